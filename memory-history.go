package settingsrouter

import (
	"errors"
	"sync"
)

// HistoryEntry is one entry of a MemoryHistory.
type HistoryEntry struct {
	Location string
	State    string
}

// MemoryHistory is an in-process History, used outside the browser and in tests.
// Popstate callbacks are delivered asynchronously and in order on a goroutine
// started by Listen and stopped by Unlisten.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []HistoryEntry
	index   int

	events chan string
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewMemoryHistory returns a MemoryHistory whose only entry is at initialLoc.
// An empty initialLoc means "/".
func NewMemoryHistory(initialLoc string) *MemoryHistory {
	if initialLoc == "" {
		initialLoc = "/"
	}
	return &MemoryHistory{
		entries: []HistoryEntry{{Location: initialLoc}},
	}
}

// Location implements History.
func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].Location
}

// State implements History.
func (h *MemoryHistory) State() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].State
}

// Push implements History.  Any entries after the current one are discarded.
func (h *MemoryHistory) Push(loc, state string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], HistoryEntry{Location: loc, State: state})
	h.index++
}

// Replace implements History.
func (h *MemoryHistory) Replace(loc string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index].Location = loc
}

// Back implements History.  It does nothing at the first entry.
func (h *MemoryHistory) Back() { h.Go(-1) }

// Forward moves one entry forward, if there is one.
func (h *MemoryHistory) Forward() { h.Go(1) }

// Go moves delta entries through the history and queues a popstate for the
// new location.  Out of range moves are ignored, like the browser does.
func (h *MemoryHistory) Go(delta int) {

	h.mu.Lock()
	ni := h.index + delta
	if delta == 0 || ni < 0 || ni >= len(h.entries) {
		h.mu.Unlock()
		return
	}
	h.index = ni
	loc := h.entries[ni].Location
	events, done := h.events, h.done
	h.mu.Unlock()

	if events == nil {
		return
	}

	select {
	case events <- loc:
	case <-done:
	}
}

// Listen implements History.
func (h *MemoryHistory) Listen(f func(loc string)) error {

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.events != nil {
		return errors.New("popstate listener already set")
	}

	h.events = make(chan string, 16)
	h.done = make(chan struct{})

	events, done := h.events, h.done
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case loc := <-events:
				f(loc)
			case <-done:
				return
			}
		}
	}()

	return nil
}

// Unlisten implements History.  It waits for an in-flight callback to return.
func (h *MemoryHistory) Unlisten() error {

	h.mu.Lock()
	if h.events == nil {
		h.mu.Unlock()
		return errors.New("popstate listener not set")
	}
	close(h.done)
	h.events, h.done = nil, nil
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}

// Entries returns a copy of all entries.
func (h *MemoryHistory) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	ret := make([]HistoryEntry, len(h.entries))
	copy(ret, h.entries)
	return ret
}

// Index returns the position of the current entry.
func (h *MemoryHistory) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index
}
