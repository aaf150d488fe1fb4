package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultCapacity = 120

// Store is a bounded in-memory ring of routing trace entries. Every routing
// decision is recorded; the enabled flag is a view hint for surfaces reading
// the ring, never a recording gate, so decisions stay replayable even when
// the debug panel is hidden.
type Store struct {
	mu        sync.Mutex
	entries   []Entry
	capacity  int
	enabled   bool
	listeners []*subscription
	now       func() time.Time
}

type subscription struct {
	fn Listener
}

func New(capacity int, enabled bool) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		enabled:  enabled,
		now:      time.Now,
	}
}

// Record stamps and stores the entry, evicting the oldest once the ring is
// full. It stores unconditionally; callers consult Enabled before showing
// trace data.
func (s *Store) Record(e Entry) {
	s.mu.Lock()
	e.ID = uuid.NewString()
	e.Timestamp = s.now()
	s.entries = append(s.entries, e)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}

	subs := make([]*subscription, len(s.listeners))
	copy(subs, s.listeners)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(e)
	}
}

// Entries returns a copy of the ring, newest last.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

func (s *Store) SetEnabled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = on
}

func (s *Store) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Subscribe registers a listener for future records and returns an
// unsubscribe func.
func (s *Store) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, cur := range s.listeners {
			if cur == sub {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
