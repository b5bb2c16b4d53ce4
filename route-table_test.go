package settingsrouter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableInvariants(t *testing.T) {

	rs, err := BuildRoutes(DefaultTable(), nil, DefaultOrigin)
	require.NoError(t, err)

	assert := assert.New(t)

	assert.Equal("BASIC", rs.Root().Name())
	assert.Equal(0, rs.Root().Depth())

	seen := make(map[string]string)
	for _, r := range rs.All() {
		if other, ok := seen[r.Path()]; ok {
			t.Errorf("path %s used by %s and %s", r.Path(), other, r.Name())
		}
		seen[r.Path()] = r.Name()

		if p := r.Parent(); p != nil {
			assert.Equal(p.Depth()+1, r.Depth(), r.Name())
		} else {
			assert.Equal(0, r.Depth(), r.Name())
		}

		assert.Same(r, rs.ForPath(r.Path()), r.Name())
		assert.Same(r, rs.Get(r.Name()))
	}

	assert.True(rs.Get("ADVANCED").IsGroup())
	assert.Same(rs.Root(), rs.Get("ADVANCED").Forward())
	assert.True(rs.Get("CLEAR_BROWSER_DATA").IsNavigableDialog())
	assert.Equal("/syncSetup/advanced", rs.Get("SYNC_ADVANCED").Path())
	assert.Equal("people", rs.Get("SYNC_ADVANCED").Section())
	assert.Equal("chrome://settings/people", rs.Get("PEOPLE").AbsolutePath())
}

func TestBuildRoutesPageVisibility(t *testing.T) {

	rs, err := BuildRoutes(DefaultTable(), PageVisibility{"appearance": false, "autofill": true, "reset": false}, "")
	require.NoError(t, err)

	assert := assert.New(t)

	assert.True(rs.Has("BASIC"))
	assert.False(rs.Has("APPEARANCE"))
	assert.False(rs.Has("FONTS"), "children of hidden pages are excluded too")
	assert.True(rs.Has("AUTOFILL"))
	assert.False(rs.Has("RESET"))
	assert.False(rs.Has("RESET_DIALOG"))
	assert.Nil(rs.ForPath("/appearance"))
	assert.NotContains(rs.Names(), "APPEARANCE")
}

func TestBuildRoutesErrors(t *testing.T) {

	var tlist = []struct {
		name  string
		table Table
		err   error
	}{
		{
			"duplicate path",
			Table{{Name: "BASIC", Path: "/"}, {Name: "A", Parent: "BASIC", Path: "/a"}, {Name: "B", Parent: "BASIC", Path: "/a/"}},
			ErrDuplicatePath,
		},
		{
			"duplicate name",
			Table{{Name: "BASIC", Path: "/"}, {Name: "BASIC", Path: "/b"}},
			ErrDuplicateName,
		},
		{
			"unknown parent",
			Table{{Name: "BASIC", Path: "/"}, {Name: "A", Parent: "NOPE", Path: "/a"}},
			ErrUnknownParent,
		},
		{
			"parent declared later",
			Table{{Name: "BASIC", Path: "/"}, {Name: "A", Parent: "B", Path: "/a"}, {Name: "B", Path: "/b"}},
			ErrUnknownParent,
		},
		{
			"section without label",
			Table{{Name: "BASIC", Path: "/"}, {Name: "A", Parent: "BASIC", Path: "/a", Kind: KindSection}},
			ErrMissingSection,
		},
		{
			"no root",
			Table{{Name: "A", Path: "/a"}},
			ErrNoRootRoute,
		},
		{
			"forward to unknown",
			Table{{Name: "BASIC", Path: "/"}, {Name: "G", Path: "/g", Kind: KindGroup, Forward: "X"}},
			ErrBadForward,
		},
		{
			"forward to group",
			Table{{Name: "BASIC", Path: "/"}, {Name: "G", Path: "/g", Kind: KindGroup, Forward: "H"}, {Name: "H", Path: "/h", Kind: KindGroup, Forward: "BASIC"}},
			ErrBadForward,
		},
		{
			"dialog without parent",
			Table{{Name: "BASIC", Path: "/"}, {Name: "D", Path: "/d", Kind: KindDialog}},
			ErrUnknownParent,
		},
	}

	for _, ti := range tlist {
		t.Run(ti.name, func(t *testing.T) {
			_, err := BuildRoutes(ti.table, nil, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ti.err), "got %v", err)
		})
	}

}

func TestBuildRoutesHiddenRowsChecked(t *testing.T) {

	tbl := Table{
		{Name: "BASIC", Path: "/"},
		{Name: "A", Parent: "BASIC", Path: "/a", Page: "a"},
		{Name: "B", Parent: "BASIC", Path: "/a"},
	}
	_, err := BuildRoutes(tbl, PageVisibility{"a": false}, "")
	assert.ErrorIs(t, err, ErrDuplicatePath)

	// a child of a hidden page still needs a unique path
	tbl = Table{
		{Name: "BASIC", Path: "/"},
		{Name: "A", Parent: "BASIC", Path: "/a", Page: "a"},
		{Name: "A_SUB", Parent: "A", Path: "sub"},
		{Name: "B", Parent: "BASIC", Path: "/a/sub"},
	}
	_, err = BuildRoutes(tbl, PageVisibility{"a": false}, "")
	assert.ErrorIs(t, err, ErrDuplicatePath)
}

func TestBuildRoutesTree(t *testing.T) {

	table := Table{
		{Name: "BASIC", Path: "/"},
		{Name: "PEOPLE", Parent: "BASIC", Path: "/people", Kind: KindSection, Section: "people"},
		{Name: "SYNC", Parent: "PEOPLE", Path: "sync", Kind: KindSubpage},
		{Name: "SIGN_OUT", Parent: "PEOPLE", Path: "/signOut", Kind: KindDialog},
	}

	rs := MustBuildRoutes(table, nil, "")

	type node struct {
		Name, Path, Section string
		Depth               int
		Subpage, Dialog     bool
	}
	var got []node
	for _, r := range rs.All() {
		got = append(got, node{r.Name(), r.Path(), r.Section(), r.Depth(), r.IsSubpage(), r.IsNavigableDialog()})
	}

	want := []node{
		{"BASIC", "/", "", 0, false, false},
		{"PEOPLE", "/people", "people", 1, false, false},
		{"SYNC", "/people/sync", "people", 2, true, false},
		{"SIGN_OUT", "/signOut", "people", 2, false, true},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("route tree mismatch (-want +got):\n%s", diff)
	}
}

func TestKindText(t *testing.T) {

	for _, k := range []Kind{KindPage, KindSection, KindSubpage, KindDialog, KindGroup} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var k2 Kind
		require.NoError(t, k2.UnmarshalText(b))
		assert.Equal(t, k, k2)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("popup")))
	_, err := Kind(42).MarshalText()
	assert.Error(t, err)
}
