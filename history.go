package settingsrouter

import "errors"

// ErrNotInBrowser is returned by BrowserHistory when there is no js environment.
var ErrNotInBrowser = errors.New("not in browser (js) environment")

// History is the host's back/forward mechanism.  Locations are path-and-query
// strings such as "/people?search=sync".  Each entry can carry a state string,
// which the Router uses to remember the path of the route it came from.
type History interface {
	Location() string                // location of the current entry
	State() string                   // state of the current entry, "" if none
	Push(loc, state string)          // add an entry after the current one
	Replace(loc string)              // change the current entry's location, keeping its state
	Back()                           // go back one entry; a popstate follows if there was one
	Listen(f func(loc string)) error // register the popstate callback
	Unlisten() error                 // remove the popstate callback
}
