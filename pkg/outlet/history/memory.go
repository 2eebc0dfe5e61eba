// Package history provides an in-memory navigation history with browser-style
// back and forward semantics. It implements router.History.
package history

import "github.com/BrandonKowalski/outlet/pkg/outlet/router"

// Entry is a single history entry: the pathname and the state pushed with it.
type Entry struct {
	Pathname string
	State    router.PushOptions
}

type subscriber struct {
	id int
	fn func()
}

// Memory keeps history entries in a slice with a cursor on the current one.
// Back and Forward move the cursor and notify subscribers, like a popstate.
// PushState discards everything after the cursor.
type Memory struct {
	entries     []Entry
	index       int
	subscribers []subscriber
	nextID      int
}

// NewMemory creates a history whose only entry is the initial pathname.
func NewMemory(initial string) *Memory {
	return &Memory{
		entries: []Entry{{Pathname: initial}},
	}
}

// PushState appends an entry after the current one and makes it current.
// Forward entries are dropped. Subscribers are not notified.
func (m *Memory) PushState(state router.PushOptions, pathname string) {
	m.entries = append(m.entries[:m.index+1], Entry{
		Pathname: pathname,
		State:    state,
	})
	m.index = len(m.entries) - 1
}

// Pathname returns the pathname of the current entry.
func (m *Memory) Pathname() string {
	return m.entries[m.index].Pathname
}

// State returns the state of the current entry.
func (m *Memory) State() router.PushOptions {
	return m.entries[m.index].State
}

// Current returns the current entry.
func (m *Memory) Current() Entry {
	return m.entries[m.index]
}

// Subscribe registers fn to run after every Back, Forward or Go move.
func (m *Memory) Subscribe(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Back moves one entry back. Returns false if already at the first entry.
func (m *Memory) Back() bool {
	return m.Go(-1)
}

// Forward moves one entry forward. Returns false if already at the last entry.
func (m *Memory) Forward() bool {
	return m.Go(1)
}

// Go moves the cursor by delta entries and notifies subscribers.
// Out of range moves and a zero delta do nothing and return false.
func (m *Memory) Go(delta int) bool {
	target := m.index + delta
	if delta == 0 || target < 0 || target >= len(m.entries) {
		return false
	}
	m.index = target

	// Copy so a subscriber may unsubscribe while being notified.
	subs := make([]subscriber, len(m.subscribers))
	copy(subs, m.subscribers)
	for _, s := range subs {
		s.fn()
	}
	return true
}

// CanGoBack returns true if there is an entry before the current one.
func (m *Memory) CanGoBack() bool {
	return m.index > 0
}

// CanGoForward returns true if there is an entry after the current one.
func (m *Memory) CanGoForward() bool {
	return m.index < len(m.entries)-1
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Index returns the position of the current entry.
func (m *Memory) Index() int {
	return m.index
}

// Entries returns a copy of all entries.
func (m *Memory) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
