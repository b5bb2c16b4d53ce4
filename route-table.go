package settingsrouter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrDuplicatePath  = errors.New("duplicate route path")
	ErrUnknownParent  = errors.New("unknown parent route")
	ErrMissingSection = errors.New("section route without section name")
	ErrNoRootRoute    = errors.New("no root route with path \"/\"")
	ErrBadForward     = errors.New("bad group forward")
)

// Kind says how a RouteSpec is attached to its parent.
type Kind int

const (
	KindPage    Kind = iota // top-level page, or plain child
	KindSection             // child that starts a section
	KindSubpage             // child inheriting its parent's section
	KindDialog              // child shown as a dialog overlay
	KindGroup               // non-renderable grouping route, forwards elsewhere
)

var kindNames = []string{"page", "section", "subpage", "dialog", "group"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid route kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if s == "" {
		*k = KindPage
		return nil
	}
	for i, n := range kindNames {
		if n == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown route kind %q", s)
}

// RouteSpec is one declarative row of a route table.
type RouteSpec struct {
	Name    string `toml:"name"`
	Parent  string `toml:"parent,omitempty"`
	Path    string `toml:"path"`
	Kind    Kind   `toml:"kind"`
	Section string `toml:"section,omitempty"`
	Page    string `toml:"page,omitempty"`    // PageVisibility key
	Forward string `toml:"forward,omitempty"` // target for KindGroup
}

// Table is an ordered list of route specs.  Parents must appear before their children.
type Table []RouteSpec

// PageVisibility gates which pages exist.  A page explicitly set to false is
// excluded along with every route below it; missing pages are visible.
type PageVisibility map[string]bool

func (pv PageVisibility) hidden(page string) bool {
	if page == "" || pv == nil {
		return false
	}
	v, ok := pv[page]
	return ok && !v
}

// Routes is an immutable registry of the routes available to a Router.
type Routes struct {
	root   *Route
	list   []*Route
	byName map[string]*Route
	byPath map[string]*Route
}

// MustBuildRoutes is like BuildRoutes but panics upon error.
func MustBuildRoutes(t Table, pv PageVisibility, origin string) *Routes {
	rs, err := BuildRoutes(t, pv, origin)
	if err != nil {
		panic(err)
	}
	return rs
}

// BuildRoutes assembles the route graph described by t.  Duplicate names
// or paths, unknown parents and malformed groups are reported as errors.
// Routes hidden by pv (and their descendants) are left out entirely.
func BuildRoutes(t Table, pv PageVisibility, origin string) (*Routes, error) {

	rs := &Routes{
		byName: make(map[string]*Route, len(t)),
		byPath: make(map[string]*Route, len(t)),
	}

	// every row is built so that the table is checked under any visibility
	all := make(map[string]*Route, len(t))
	byPath := make(map[string]*Route, len(t))
	excluded := make(map[string]bool)
	forwards := make(map[*Route]string)

	for i, spec := range t {

		if spec.Name == "" {
			return nil, fmt.Errorf("route table entry %d: empty name", i)
		}
		if all[spec.Name] != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, spec.Name)
		}

		var parent *Route
		if spec.Parent != "" {
			parent = all[spec.Parent]
			if parent == nil {
				return nil, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, spec.Parent, spec.Name)
			}
		}

		r, err := newRouteFromSpec(spec, parent)
		if err != nil {
			return nil, err
		}
		r.name = spec.Name
		r.origin = origin
		r.path = CanonicalPath(r.path)
		if spec.Page != "" {
			r.page = spec.Page
		}

		if other := byPath[r.path]; other != nil {
			return nil, fmt.Errorf("%w: %s used by %s and %s", ErrDuplicatePath, r.path, other.name, r.name)
		}
		all[r.name] = r
		byPath[r.path] = r

		if excluded[spec.Parent] || pv.hidden(spec.Page) {
			excluded[spec.Name] = true
			continue
		}

		if spec.Kind == KindGroup {
			forwards[r] = spec.Forward
		}

		rs.byName[r.name] = r
		rs.byPath[r.path] = r
		rs.list = append(rs.list, r)
	}

	for r, target := range forwards {
		f := rs.byName[target]
		if f == nil {
			return nil, fmt.Errorf("%w: %s forwards to unknown route %q", ErrBadForward, r.name, target)
		}
		if _, isGroup := forwards[f]; isGroup {
			return nil, fmt.Errorf("%w: %s forwards to group %s", ErrBadForward, r.name, f.name)
		}
		r.forward = f
	}

	rs.root = rs.byPath["/"]
	if rs.root == nil || rs.root.parent != nil {
		return nil, ErrNoRootRoute
	}

	return rs, nil
}

func newRouteFromSpec(spec RouteSpec, parent *Route) (*Route, error) {

	if spec.Path == "" {
		return nil, fmt.Errorf("route %s: empty path", spec.Name)
	}

	switch spec.Kind {
	case KindPage, KindGroup:
		if parent == nil {
			return NewRoute(spec.Path), nil
		}
		return parent.CreateChild(spec.Path), nil
	case KindSection:
		if spec.Section == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, spec.Name)
		}
		if parent == nil {
			r := NewRoute(spec.Path)
			r.section = spec.Section
			return r, nil
		}
		return parent.CreateSection(spec.Path, spec.Section), nil
	case KindSubpage, KindDialog:
		if parent == nil {
			return nil, fmt.Errorf("%w: %s %s requires a parent", ErrUnknownParent, spec.Kind, spec.Name)
		}
		if spec.Kind == KindDialog {
			return parent.CreateDialog(spec.Path), nil
		}
		return parent.CreateChild(spec.Path), nil
	}

	return nil, fmt.Errorf("route %s: invalid kind %v", spec.Name, spec.Kind)
}

// Root returns the default route (path "/").
func (rs *Routes) Root() *Route { return rs.root }

// Get returns the named route or nil.
func (rs *Routes) Get(name string) *Route { return rs.byName[name] }

// Has reports whether a route with the given name exists.
func (rs *Routes) Has(name string) bool { return rs.byName[name] != nil }

// All returns the routes in table order.
func (rs *Routes) All() []*Route {
	ret := make([]*Route, len(rs.list))
	copy(ret, rs.list)
	return ret
}

// Names returns the route names in table order.
func (rs *Routes) Names() []string {
	ret := make([]string, len(rs.list))
	for i, r := range rs.list {
		ret[i] = r.name
	}
	return ret
}

// ForPath returns the route whose path equals the canonical form of p, or nil.
func (rs *Routes) ForPath(p string) *Route {
	return rs.byPath[CanonicalPath(p)]
}

// owns reports whether r is one of this registry's routes (by identity).
func (rs *Routes) owns(r *Route) bool {
	return r != nil && rs.byName[r.name] == r
}
