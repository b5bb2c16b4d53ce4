package settingsrouter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTableTOML = `
origin = "chrome://settings"

[[route]]
name = "BASIC"
path = "/"

[[route]]
name = "ADVANCED"
path = "/advanced"
kind = "group"
forward = "BASIC"

[[route]]
name = "PEOPLE"
parent = "BASIC"
path = "/people"
kind = "section"
section = "people"
page = "people"

[[route]]
name = "SIGN_OUT"
parent = "PEOPLE"
path = "/signOut"
kind = "dialog"
`

func TestParseTable(t *testing.T) {

	tf, err := ParseTable([]byte(testTableTOML))
	require.NoError(t, err)

	want := Table{
		{Name: "BASIC", Path: "/"},
		{Name: "ADVANCED", Path: "/advanced", Kind: KindGroup, Forward: "BASIC"},
		{Name: "PEOPLE", Parent: "BASIC", Path: "/people", Kind: KindSection, Section: "people", Page: "people"},
		{Name: "SIGN_OUT", Parent: "PEOPLE", Path: "/signOut", Kind: KindDialog},
	}
	if diff := cmp.Diff(want, tf.Table()); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "chrome://settings", tf.Origin)

	rs, err := BuildRoutes(tf.Table(), nil, tf.Origin)
	require.NoError(t, err)
	assert.True(t, rs.Get("SIGN_OUT").IsNavigableDialog())

	_, err = ParseTable([]byte("[[route]]\nkind = \"popup\"\n"))
	assert.Error(t, err)
}

func TestLoadTableDefaultRoundTrip(t *testing.T) {

	tf := &TableFile{Origin: DefaultOrigin, Routes: DefaultTable()}
	b, err := tf.Marshal()
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(p, b, 0o644))

	got, err := LoadTable(p)
	require.NoError(t, err)
	if diff := cmp.Diff(tf, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
