package settingsrouter

import (
	"errors"
	"strings"

	"github.com/vugu/vugu/js"
)

// BrowserHistory implements History on top of window.history.
// Outside a js environment all writes are no-ops and Listen returns ErrNotInBrowser.
type BrowserHistory struct {
	useFragment  bool
	popStateFunc js.Func
}

// NewBrowserHistory returns a History backed by the browser.
func NewBrowserHistory() *BrowserHistory {
	return &BrowserHistory{}
}

// UseFragment sets the fragment flag which if set means the fragment part of the URL (after the "#")
// is used as the path and query string.  This can be useful for applications which are
// served statically and cannot route on the server side.
// If used it should be set immediately after creation.
func (h *BrowserHistory) UseFragment(v bool) {
	h.useFragment = v
}

func (h *BrowserHistory) history() js.Value {
	g := js.Global()
	if !g.Truthy() {
		return js.Value{}
	}
	return g.Get("window").Get("history")
}

func (h *BrowserHistory) url(loc string) string {
	if h.useFragment {
		return "#" + loc
	}
	return loc
}

// Location implements History.
func (h *BrowserHistory) Location() string {

	g := js.Global()
	if !g.Truthy() {
		return ""
	}

	location := g.Get("window").Get("location")
	if h.useFragment {
		return strings.TrimPrefix(location.Get("hash").String(), "#")
	}

	return location.Get("pathname").String() + location.Get("search").String()
}

// State implements History.
func (h *BrowserHistory) State() string {
	hist := h.history()
	if !hist.Truthy() {
		return ""
	}
	st := hist.Get("state")
	if !st.Truthy() {
		return ""
	}
	return st.String()
}

// Push implements History.
func (h *BrowserHistory) Push(loc, state string) {
	hist := h.history()
	if hist.Truthy() {
		hist.Call("pushState", state, "", h.url(loc))
	}
}

// Replace implements History.
func (h *BrowserHistory) Replace(loc string) {
	hist := h.history()
	if hist.Truthy() {
		hist.Call("replaceState", hist.Get("state"), "", h.url(loc))
	}
}

// Back implements History.
func (h *BrowserHistory) Back() {
	hist := h.history()
	if hist.Truthy() {
		hist.Call("back")
	}
}

// Listen implements History.
func (h *BrowserHistory) Listen(f func(loc string)) error {

	g := js.Global()
	if !g.Truthy() {
		return ErrNotInBrowser
	}

	if !h.popStateFunc.IsUndefined() {
		return errors.New("popstate listener already set")
	}

	jf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		f(h.Location())
		return nil
	})

	g.Get("window").Call("addEventListener", "popstate", jf)

	h.popStateFunc = jf

	return nil
}

// Unlisten implements History.
func (h *BrowserHistory) Unlisten() error {

	g := js.Global()
	if !g.Truthy() {
		return ErrNotInBrowser
	}

	if h.popStateFunc.IsUndefined() {
		return errors.New("popstate listener not set")
	}

	g.Get("window").Call("removeEventListener", "popstate", h.popStateFunc)

	h.popStateFunc.Release()
	h.popStateFunc = js.Func{}

	return nil
}
