// Package settingsrouter tracks navigation through a hierarchical tree of
// settings routes and keeps it in sync with the host's history.
package settingsrouter

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrUnknownRoute is returned when navigating to a route that is not part of
	// the router's route set (including routes hidden by PageVisibility).
	ErrUnknownRoute = errors.New("route not in router")

	// ErrNoRoute is returned when a path does not resolve to any route.
	ErrNoRoute = errors.New("no route for path")
)

// EventEnv is our view of a Vugu EventEnv
type EventEnv interface {
	Lock()         // acquire write lock
	UnlockOnly()   // release write lock
	UnlockRender() // release write lock and request re-render
}

// Option configures a Router.
type Option func(*options)

type options struct {
	table      Table
	visibility PageVisibility
	origin     string
	history    History
	eventEnv   EventEnv
	logger     *zap.Logger
}

// WithTable sets the route table.  DefaultTable is used if not given.
func WithTable(t Table) Option { return func(o *options) { o.table = t } }

// WithPageVisibility hides pages (and all routes below them) set to false.
func WithPageVisibility(pv PageVisibility) Option { return func(o *options) { o.visibility = pv } }

// WithOrigin sets the origin used by Route.AbsolutePath.
func WithOrigin(origin string) Option { return func(o *options) { o.origin = origin } }

// WithHistory sets the host history.  A MemoryHistory at "/" is used if not given.
func WithHistory(h History) Option { return func(o *options) { o.history = h } }

// WithEventEnv makes popstate updates run under the env lock and request a render.
func WithEventEnv(env EventEnv) Option { return func(o *options) { o.eventEnv = env } }

// WithLogger sets the logger.  Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

// Router tracks the current route and query parameters.
type Router struct {
	mu sync.Mutex

	routes   *Routes
	history  History
	eventEnv EventEnv
	logger   *zap.Logger

	currentRoute *Route
	currentQuery QueryParams
	wasPopstate  bool

	observers    []*observerEntry
	pending      []*Transition
	bindParamMap map[string]BindParam

	listening bool
}

// MustNew is like New but panics upon error.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// New builds the route set and returns a Router positioned at the history's
// current location, or at the root route if that location matches nothing.
func New(opts ...Option) (*Router, error) {

	o := options{origin: DefaultOrigin}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = DefaultTable()
	}
	if o.history == nil {
		o.history = NewMemoryHistory("/")
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	routes, err := BuildRoutes(o.table, o.visibility, o.origin)
	if err != nil {
		return nil, fmt.Errorf("building routes: %w", err)
	}

	r := &Router{
		routes:       routes,
		history:      o.history,
		eventEnv:     o.eventEnv,
		logger:       o.logger,
		currentRoute: routes.Root(),
		bindParamMap: make(map[string]BindParam),
	}

	r.initFromLocation()

	if err := r.history.Listen(r.handlePopState); err != nil {
		// no host events (e.g. BrowserHistory outside the browser); navigation still works
		r.logger.Warn("popstate listener not registered", zap.Error(err))
	} else {
		r.listening = true
	}

	return r, nil
}

func (r *Router) initFromLocation() {

	loc := r.history.Location()
	if loc == "" {
		return
	}

	p, q := splitLocation(loc)
	route := r.routes.ForPath(p)
	if route == nil {
		r.logger.Debug("initial location matches no route", zap.String("location", loc))
		route = r.routes.Root()
	}
	route = route.resolve()

	r.currentRoute = route
	r.currentQuery = q

	if canon := joinLocation(route.path, q); canon != loc {
		r.history.Replace(canon)
	}
}

// Close removes the popstate listener.  Pending transitions never commit after Close.
func (r *Router) Close() error {
	r.mu.Lock()
	listening := r.listening
	r.listening = false
	r.mu.Unlock()

	if !listening {
		return nil
	}
	return r.history.Unlisten()
}

// Routes returns the route set.
func (r *Router) Routes() *Routes { return r.routes }

// Route returns the named route or nil if the router does not have it.
func (r *Router) Route(name string) *Route { return r.routes.Get(name) }

// HasRoute reports whether the named route is part of this router's route set.
func (r *Router) HasRoute(name string) bool { return r.routes.Has(name) }

// RouteForPath returns the route for p (trailing slash ignored) or nil.
func (r *Router) RouteForPath(p string) *Route { return r.routes.ForPath(p) }

// History returns the host history the router writes to.
func (r *Router) History() History { return r.history }

// CurrentRoute returns the active route.
func (r *Router) CurrentRoute() *Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentRoute
}

// QueryParameters returns a copy of the current query parameters.
func (r *Router) QueryParameters() QueryParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentQuery.Clone()
}

// LastRouteChangeWasPopstate reports whether the last route change came from
// a back/forward navigation rather than an explicit NavigateTo.
func (r *Router) LastRouteChangeWasPopstate() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wasPopstate
}

// MustNavigateTo is like NavigateTo but panics upon error.
func (r *Router) MustNavigateTo(route *Route, query QueryParams, opts ...NavigatorOpt) {
	err := r.NavigateTo(route, query, opts...)
	if err != nil {
		panic(err)
	}
}

// NavigateTo makes route current and pushes a history entry for it.
//
// Group routes (such as ADVANCED) forward to their target in the same call.
// query replaces the current parameters, except that an existing search
// parameter is kept unless NavRemoveSearch is given or query sets its own.
func (r *Router) NavigateTo(route *Route, query QueryParams, opts ...NavigatorOpt) error {

	r.mu.Lock()

	if !r.routes.owns(route) {
		r.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrUnknownRoute, route)
	}

	target := route.resolve()
	params := query.Clone()

	oldSearch := r.currentQuery.Get(SearchParam)
	if !navOpts(opts).has(NavRemoveSearch) && oldSearch != "" && params.Get(SearchParam) == "" {
		params = params.Set(SearchParam, oldSearch)
	}

	loc := joinLocation(target.path, params)
	if navOpts(opts).has(NavReplace) {
		r.history.Replace(loc)
	} else {
		r.history.Push(loc, r.currentRoute.path)
	}

	old := r.currentRoute
	r.setCurrentLocked(target, params, false)
	obs := r.observersLocked()

	r.mu.Unlock()

	r.logger.Debug("navigated",
		zap.Stringer("route", target),
		zap.Stringer("from", old),
		zap.String("query", params.Encode()))

	r.notify(obs, target, old)

	return nil
}

// NavigateToPath is like NavigateTo but resolves p first.
func (r *Router) NavigateToPath(p string, query QueryParams, opts ...NavigatorOpt) error {
	route := r.routes.ForPath(p)
	if route == nil {
		return fmt.Errorf("%w: %q", ErrNoRoute, p)
	}
	return r.NavigateTo(route, query, opts...)
}

// NavigateToPreviousRoute goes back one step.
//
// If the previous history entry is a top-level page that is not an ancestor of
// the current route, the current entry is replaced by the root route.  If it is
// at the same depth as the current route or shallower (an ancestor or a
// sibling) the host is asked to go back and the returned Transition commits when its popstate
// arrives.  Otherwise, including when there is no previous entry, the current
// entry is replaced by the current route's parent (or the root route) and the
// Transition commits before this returns.  Either way the change counts as a
// popstate.
func (r *Router) NavigateToPreviousRoute() *Transition {

	t := newTransition()

	r.mu.Lock()

	cur := r.currentRoute
	var prev *Route
	if st := r.history.State(); st != "" {
		prev = r.routes.ForPath(st)
	}

	// a top-level page that is not above the current route leads back to the root
	if prev != nil && prev.depth == 0 && !prev.Contains(cur) {
		root := r.routes.Root().resolve()
		r.history.Replace(root.path)
		r.setCurrentLocked(root, nil, true)
		obs := r.observersLocked()

		r.mu.Unlock()

		r.logger.Debug("went back to root", zap.Stringer("from", cur), zap.Stringer("previous", prev))

		r.notify(obs, root, cur)
		t.commit(root, nil)

		return t
	}

	if prev != nil && prev.depth <= cur.depth && r.listening {
		r.pending = append(r.pending, t)
		r.mu.Unlock()
		r.logger.Debug("going back through history", zap.Stringer("from", cur), zap.Stringer("to", prev))
		r.history.Back()
		return t
	}

	target := cur.parent
	if target == nil {
		target = r.routes.Root()
	}
	target = target.resolve()

	r.history.Replace(target.path)
	r.setCurrentLocked(target, nil, true)
	obs := r.observersLocked()

	r.mu.Unlock()

	r.logger.Debug("went back to parent", zap.Stringer("from", cur), zap.Stringer("to", target))

	r.notify(obs, target, cur)
	t.commit(target, nil)

	return t
}

// handlePopState is called by the history when the host navigates back or forward.
func (r *Router) handlePopState(loc string) {

	if r.eventEnv != nil {
		r.eventEnv.Lock()
		defer r.eventEnv.UnlockRender()
	}

	p, q := splitLocation(loc)

	r.mu.Lock()

	route := r.routes.ForPath(p)
	if route == nil {
		r.logger.Warn("popstate to unknown location, using root route", zap.String("location", loc))
		route = r.routes.Root()
	}
	route = route.resolve()

	if canon := joinLocation(route.path, q); canon != loc {
		r.history.Replace(canon)
	}

	old := r.currentRoute
	r.setCurrentLocked(route, q, true)
	obs := r.observersLocked()

	var t *Transition
	if len(r.pending) > 0 {
		t = r.pending[0]
		r.pending = r.pending[1:]
	}

	r.mu.Unlock()

	r.logger.Debug("popstate", zap.Stringer("route", route), zap.Stringer("from", old))

	r.notify(obs, route, old)
	if t != nil {
		t.commit(route, q)
	}
}

// setCurrentLocked commits a route change.  r.mu must be held.
func (r *Router) setCurrentLocked(route *Route, q QueryParams, popstate bool) {
	r.currentRoute = route
	r.currentQuery = q
	r.wasPopstate = popstate
	r.writeBindingsLocked()
}

// ResetForTesting puts the router back at the root route with no query and
// clears the popstate flag.  History is left alone and observers are not called.
func (r *Router) ResetForTesting() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentRoute = r.routes.Root()
	r.currentQuery = nil
	r.wasPopstate = false
	r.pending = nil
}

// Observe registers o to be called after every route change.
// The returned func removes it.
func (r *Router) Observe(o RouteObserver) (remove func()) {

	e := &observerEntry{o: o}

	r.mu.Lock()
	r.observers = append(r.observers, e)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, e2 := range r.observers {
			if e2 == e {
				r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

func (r *Router) observersLocked() []*observerEntry {
	ret := make([]*observerEntry, len(r.observers))
	copy(ret, r.observers)
	return ret
}

func (r *Router) notify(obs []*observerEntry, newRoute, oldRoute *Route) {
	for _, e := range obs {
		e.o.CurrentRouteChanged(newRoute, oldRoute)
	}
}

// Bind ties a query parameter to param.  param is written whenever the route
// changes and read by QueryUpdate.  A later Bind with the same name replaces
// the earlier one.
func (r *Router) Bind(name string, param BindParam) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindParamMap[name] = param
	param.BindParamWrite(queryValues(r.currentQuery, name))
}

// Unbind removes a binding added with Bind.
func (r *Router) Unbind(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindParamMap, name)
}

// QueryUpdate implements QueryUpdater.  It copies bound parameter values into
// the current query and replaces the current history entry; the route stays
// the same and no new entry is pushed.
func (r *Router) QueryUpdate() {

	r.mu.Lock()

	names := make([]string, 0, len(r.bindParamMap))
	for k := range r.bindParamMap {
		names = append(names, k)
	}
	sort.Strings(names)

	q := r.currentQuery.Clone()
	for _, name := range names {
		vals := r.bindParamMap[name].BindParamRead()
		if len(vals) == 0 {
			q = q.Del(name)
			continue
		}
		q = q.Set(name, vals[0])
		for _, v := range vals[1:] {
			q = q.Add(name, v)
		}
	}

	cur := r.currentRoute
	r.history.Replace(joinLocation(cur.path, q))
	r.currentQuery = q
	obs := r.observersLocked()

	r.mu.Unlock()

	r.notify(obs, cur, cur)
}

func (r *Router) writeBindingsLocked() {
	for name, bp := range r.bindParamMap {
		bp.BindParamWrite(queryValues(r.currentQuery, name))
	}
}

func queryValues(q QueryParams, name string) []string {
	var ret []string
	for _, p := range q {
		if p.Key == name {
			ret = append(ret, p.Value)
		}
	}
	return ret
}
