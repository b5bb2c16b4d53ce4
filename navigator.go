package settingsrouter

// NavigatorOpt is a marker interface to ensure that options to Navigator are passed intentionally.
type NavigatorOpt interface {
	IsNavigatorOpt()
}

type intNavigatorOpt int

// IsNavigatorOpt implements NavigatorOpt.
func (i intNavigatorOpt) IsNavigatorOpt() {}

var (
	// NavReplace will cause this navigation to replace the
	// current history entry rather than pushing to the stack.
	// Implemented using window.history.replaceState()
	NavReplace NavigatorOpt = intNavigatorOpt(1)

	// NavRemoveSearch drops the current search query parameter instead of
	// carrying it over to the new route.
	NavRemoveSearch NavigatorOpt = intNavigatorOpt(2)
)

type navOpts []NavigatorOpt

func (no navOpts) has(o NavigatorOpt) bool {
	for _, o2 := range no {
		if o == o2 {
			return true
		}
	}
	return false
}

// Navigator is the part of Router that components use to move around.
type Navigator interface {
	NavigateTo(route *Route, query QueryParams, opts ...NavigatorOpt) error
	NavigateToPreviousRoute() *Transition
	CurrentRoute() *Route
}

// NavigatorRef is embedded in components that need to navigate.  The router
// is handed to them explicitly instead of being looked up globally.
type NavigatorRef struct {
	Navigator // embed Navigator
}

// NavigatorSet implements NavigatorSetter.
func (h *NavigatorRef) NavigatorSet(o Navigator) {
	h.Navigator = o
}

// NavigatorSetter is implemented by anything that accepts a Navigator.
type NavigatorSetter interface {
	NavigatorSet(Navigator)
}
