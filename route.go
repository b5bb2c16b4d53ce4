package settingsrouter

import (
	"path"
	"strings"
)

// DefaultOrigin is the origin used by AbsolutePath when none was configured.
const DefaultOrigin = "chrome://settings"

// Route is a node in the settings navigation tree.
// Routes are built once (see BuildRoutes) and never mutated afterwards.
type Route struct {
	name    string
	path    string
	section string
	page    string
	origin  string
	depth   int
	dialog  bool
	parent  *Route
	forward *Route // non-nil for group routes
}

// NewRoute returns a depth-0 route for the given path.
func NewRoute(p string) *Route {
	return &Route{path: p}
}

// CreateChild returns a route one level below r.  A relative p is appended
// to r's path, a p with a leading slash is used as-is.
// The child inherits r's section.
func (r *Route) CreateChild(p string) *Route {

	np := p
	if !strings.HasPrefix(p, "/") {
		np = path.Join(r.path, p)
	}

	return &Route{
		path:    np,
		section: r.section,
		page:    r.page,
		origin:  r.origin,
		depth:   r.depth + 1,
		parent:  r,
	}
}

// CreateSection is like CreateChild but labels the new route with section.
func (r *Route) CreateSection(p, section string) *Route {
	ret := r.CreateChild(p)
	ret.section = section
	return ret
}

// CreateDialog is like CreateChild but marks the new route as a navigable dialog.
func (r *Route) CreateDialog(p string) *Route {
	ret := r.CreateChild(p)
	ret.dialog = true
	return ret
}

// Name returns the registry name, e.g. "PEOPLE".  Empty for routes not built from a Table.
func (r *Route) Name() string { return r.name }

// Path returns the canonical path.
func (r *Route) Path() string { return r.path }

// Section returns the section label, empty if the route is not in a section.
func (r *Route) Section() string { return r.section }

// Page returns the page visibility key gating this route.
func (r *Route) Page() string { return r.page }

// Depth returns 0 for top-level routes and parent depth + 1 otherwise.
func (r *Route) Depth() int { return r.depth }

// Parent returns the route r was derived from, or nil.
func (r *Route) Parent() *Route { return r.parent }

// IsNavigableDialog reports whether r is a dialog overlay.
func (r *Route) IsNavigableDialog() bool { return r.dialog }

// IsGroup reports whether r only groups other routes and forwards when navigated to.
func (r *Route) IsGroup() bool { return r.forward != nil }

// Forward returns the route navigation is redirected to for group routes, nil otherwise.
func (r *Route) Forward() *Route { return r.forward }

// IsSubpage reports whether r is at depth 2 or more and is not a dialog.
func (r *Route) IsSubpage() bool {
	return r.depth >= 2 && !r.dialog
}

// Contains reports whether other is r or a descendant of r.
func (r *Route) Contains(other *Route) bool {
	for o := other; o != nil; o = o.parent {
		if o == r {
			return true
		}
	}
	return false
}

// AbsolutePath returns origin + path.  It does not depend on navigation state.
func (r *Route) AbsolutePath() string {
	origin := r.origin
	if origin == "" {
		origin = DefaultOrigin
	}
	return strings.TrimSuffix(origin, "/") + r.path
}

// String implements fmt.Stringer.
func (r *Route) String() string {
	if r == nil {
		return "<nil>"
	}
	if r.name != "" {
		return r.name + "(" + r.path + ")"
	}
	return r.path
}

// resolve follows group forwarding.
func (r *Route) resolve() *Route {
	if r.forward != nil {
		return r.forward
	}
	return r
}
