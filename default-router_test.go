package settingsrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRouterLifecycle(t *testing.T) {

	require.NoError(t, ResetDefaultForTesting())
	assert.Panics(t, func() { Default() })

	r1, err := BuildForTesting()
	require.NoError(t, err)
	assert.Same(t, r1, Default())

	require.NoError(t, Default().NavigateTo(r1.Route("PEOPLE"), nil))

	r2, err := BuildForTesting(WithPageVisibility(PageVisibility{"appearance": false}))
	require.NoError(t, err)
	assert.Same(t, r2, Default())
	assert.Same(t, r2.Route("BASIC"), Default().CurrentRoute())
	assert.False(t, Default().HasRoute("APPEARANCE"))

	_, err = BuildForTesting(WithTable(Table{{Name: "X", Path: "/x"}}))
	assert.ErrorIs(t, err, ErrNoRootRoute)
	assert.Same(t, r2, Default(), "a failed build leaves the default alone")

	require.NoError(t, ResetDefaultForTesting())
	assert.Panics(t, func() { Default() })
}
