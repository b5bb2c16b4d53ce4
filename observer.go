package settingsrouter

// RouteObserver implementations are called after the current route changes.
// oldRoute is the route that was current before the change and may equal newRoute
// when only the query changed.
type RouteObserver interface {
	CurrentRouteChanged(newRoute, oldRoute *Route)
}

// RouteObserverFunc implements RouteObserver as a function.
type RouteObserverFunc func(newRoute, oldRoute *Route)

// CurrentRouteChanged implements the RouteObserver interface.
func (f RouteObserverFunc) CurrentRouteChanged(newRoute, oldRoute *Route) { f(newRoute, oldRoute) }

type observerEntry struct {
	o RouteObserver
}
