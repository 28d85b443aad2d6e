package stack

import (
	"net/url"
	"sync"
)

// MemoryHost is an in-process Host with browser-like history semantics:
// Navigate pushes a new history entry, Back pops one. It notifies
// subscribers on every location change, which makes it suitable both for
// tests and for embedding sfoglia in applications without a URL bar.
type MemoryHost struct {
	mu        sync.Mutex
	history   []Location
	listeners map[int]func()
	nextID    int
}

// NewMemoryHost creates a MemoryHost positioned at the given initial path
// with an empty query.
func NewMemoryHost(path string) *MemoryHost {
	return &MemoryHost{
		history:   []Location{{Path: path, Query: url.Values{}}},
		listeners: make(map[int]func()),
	}
}

// Location implements Host.
func (h *MemoryHost) Location() Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.history[len(h.history)-1].Clone()
}

// Navigate implements Host. A new history entry is pushed for every call.
func (h *MemoryHost) Navigate(loc Location) {
	h.mu.Lock()
	h.history = append(h.history, loc.Clone())
	fns := h.snapshotListeners()
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Back pops one history entry, like the browser back button. No-op at the
// start of history.
func (h *MemoryHost) Back() {
	h.mu.Lock()
	if len(h.history) <= 1 {
		h.mu.Unlock()
		return
	}
	h.history = h.history[:len(h.history)-1]
	fns := h.snapshotListeners()
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// HistoryLen returns the number of history entries, including the initial
// location.
func (h *MemoryHost) HistoryLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.history)
}

// Subscribe implements Notifier.
func (h *MemoryHost) Subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// snapshotListeners returns the current listeners in registration order.
// Callers must hold mu.
func (h *MemoryHost) snapshotListeners() []func() {
	fns := make([]func(), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
