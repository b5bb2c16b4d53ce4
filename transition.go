package settingsrouter

import "context"

// Transition is a back navigation that commits once the host delivers the
// matching popstate.  Wait on Done (or call Wait) before reading Route.
type Transition struct {
	done  chan struct{}
	route *Route
	query QueryParams
}

func newTransition() *Transition {
	return &Transition{done: make(chan struct{})}
}

func (t *Transition) commit(route *Route, query QueryParams) {
	t.route = route
	t.query = query.Clone()
	close(t.done)
}

// Done is closed once the transition has committed.
func (t *Transition) Done() <-chan struct{} { return t.done }

// Route returns the route the transition landed on, or nil if it has not committed yet.
func (t *Transition) Route() *Route {
	select {
	case <-t.done:
		return t.route
	default:
		return nil
	}
}

// Query returns the query parameters the transition landed on.
func (t *Transition) Query() QueryParams {
	select {
	case <-t.done:
		return t.query.Clone()
	default:
		return nil
	}
}

// Wait blocks until the transition commits or ctx is done.
func (t *Transition) Wait(ctx context.Context) (*Route, error) {
	select {
	case <-t.done:
		return t.route, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
