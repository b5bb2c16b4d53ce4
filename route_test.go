package settingsrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteCreateChild(t *testing.T) {

	assert := assert.New(t)

	basic := NewRoute("/")
	assert.Equal(0, basic.Depth())
	assert.Nil(basic.Parent())
	assert.Equal("", basic.Section())

	people := basic.CreateSection("/people", "people")
	assert.Equal(1, people.Depth())
	assert.Same(basic, people.Parent())
	assert.Equal("people", people.Section())
	assert.Equal("/people", people.Path())

	sync := people.CreateChild("/syncSetup")
	assert.Equal(2, sync.Depth())
	assert.Equal("people", sync.Section())
	assert.Equal("/syncSetup", sync.Path())

	adv := sync.CreateChild("advanced")
	assert.Equal("/syncSetup/advanced", adv.Path())
	assert.Equal(3, adv.Depth())
	assert.Equal("people", adv.Section())

	plain := basic.CreateChild("help")
	assert.Equal("/help", plain.Path())
	assert.Equal("", plain.Section())
}

func TestRouteIsSubpage(t *testing.T) {

	assert := assert.New(t)

	basic := NewRoute("/")
	privacy := basic.CreateSection("/privacy", "privacy")
	security := privacy.CreateChild("/security")
	dialog := privacy.CreateDialog("/clearBrowserData")
	nestedDialog := security.CreateDialog("/manageCerts")

	assert.False(basic.IsSubpage())
	assert.False(privacy.IsSubpage())
	assert.False(dialog.IsSubpage())
	assert.True(dialog.IsNavigableDialog())
	assert.True(security.IsSubpage())
	assert.False(nestedDialog.IsSubpage())
}

func TestRouteContains(t *testing.T) {

	assert := assert.New(t)

	basic := NewRoute("/")
	people := basic.CreateSection("/people", "people")
	sync := people.CreateChild("/syncSetup")
	appearance := basic.CreateSection("/appearance", "appearance")
	advanced := NewRoute("/advanced")

	all := []*Route{basic, people, sync, appearance, advanced}
	for _, r := range all {
		assert.True(r.Contains(r), "%v contains itself", r)
	}

	assert.True(basic.Contains(sync))
	assert.True(people.Contains(sync))
	assert.False(sync.Contains(people))
	assert.False(appearance.Contains(sync))
	assert.False(advanced.Contains(people))
	assert.False(basic.Contains(nil))

	for _, a := range all {
		for _, b := range all {
			if a.Contains(b) && b.Contains(a) {
				assert.Same(a, b)
			}
		}
	}
}

func TestRouteAbsolutePath(t *testing.T) {

	people := NewRoute("/").CreateSection("/people", "people")
	assert.Equal(t, "chrome://settings/people", people.AbsolutePath())

	people.origin = "chrome://settings/"
	assert.Equal(t, "chrome://settings/people", people.AbsolutePath())
}
