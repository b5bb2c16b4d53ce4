package settingsrouter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistoryPushTruncatesForward(t *testing.T) {

	assert := assert.New(t)

	h := NewMemoryHistory("")
	assert.Equal("/", h.Location())
	assert.Equal("", h.State())

	h.Push("/people", "/")
	h.Push("/syncSetup", "/people")
	assert.Equal(2, h.Index())
	assert.Equal("/people", h.State())

	h.Back()
	h.Back()
	assert.Equal(0, h.Index())
	h.Back() // no-op at the first entry
	assert.Equal(0, h.Index())

	h.Forward()
	assert.Equal("/people", h.Location())

	h.Push("/appearance", "/people")
	assert.Equal([]HistoryEntry{
		{"/", ""},
		{"/people", "/"},
		{"/appearance", "/people"},
	}, h.Entries())

	h.Replace("/appearance?x=1")
	assert.Equal("/appearance?x=1", h.Location())
	assert.Equal("/people", h.State())
}

func TestMemoryHistoryPopstateOrder(t *testing.T) {

	h := NewMemoryHistory("/")
	h.Push("/a", "/")
	h.Push("/b", "/a")
	h.Push("/c", "/b")

	got := make(chan string, 8)
	require.NoError(t, h.Listen(func(loc string) { got <- loc }))
	assert.Error(t, h.Listen(func(string) {}))

	h.Back()
	h.Back()
	h.Forward()
	h.Go(5) // out of range

	for _, want := range []string{"/b", "/a", "/b"} {
		select {
		case loc := <-got:
			assert.Equal(t, want, loc)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for popstate %s", want)
		}
	}

	require.NoError(t, h.Unlisten())
	assert.Error(t, h.Unlisten())

	// without a listener moving still works but nothing is delivered
	h.Back()
	assert.Equal(t, "/a", h.Location())
}

func TestBrowserHistoryOutsideBrowser(t *testing.T) {

	h := NewBrowserHistory()
	h.UseFragment(true)

	assert.Equal(t, "", h.Location())
	assert.Equal(t, "", h.State())
	assert.ErrorIs(t, h.Listen(func(string) {}), ErrNotInBrowser)
	assert.ErrorIs(t, h.Unlisten(), ErrNotInBrowser)

	r, err := New(WithHistory(h))
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.NavigateTo(r.Route("PEOPLE"), nil))
	assert.Same(t, r.Route("PEOPLE"), r.CurrentRoute())

	// no host history to go back through, so the parent is used
	tr := r.NavigateToPreviousRoute()
	<-tr.Done()
	assert.Same(t, r.Route("BASIC"), tr.Route())
}
