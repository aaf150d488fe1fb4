package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"household-relay/internal/model"
	"household-relay/internal/voice"
)

// Store is the mutex-guarded in-memory household state: tasks, events,
// members and the relay inbox. It implements the capability interfaces the
// voice execution handler consumes.
type Store struct {
	mu      sync.RWMutex
	tasks   []model.Task
	events  []model.Event
	members []model.Member
	inbox   []model.InboxMessage
	now     func() time.Time
}

var (
	_ voice.TaskStore       = (*Store)(nil)
	_ voice.EventStore      = (*Store)(nil)
	_ voice.HouseholdReader = (*Store)(nil)
)

func New() *Store {
	return &Store{now: time.Now}
}

// Seed replaces the current state wholesale. Intended for startup fixtures
// and tests.
func (s *Store) Seed(tasks []model.Task, events []model.Event, members []model.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]model.Task(nil), tasks...)
	s.events = append([]model.Event(nil), events...)
	s.members = append([]model.Member(nil), members...)
}

// ---- tasks ----

// AddTask stores the task, generating an id when absent. A caller-supplied
// id is kept so an undo can restore a deleted task under its original id.
func (s *Store) AddTask(t model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *Store) UpdateTask(id string, patch model.TaskPatch) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.DueDateISO != nil {
			t.DueDateISO = *patch.DueDateISO
		}
		if patch.Time != nil {
			t.Time = *patch.Time
		}
		if patch.Assignee != nil {
			t.Assignee = *patch.Assignee
		}
		if patch.Recurrence != nil {
			t.Recurrence = *patch.Recurrence
		}
		return *t, true
	}
	return model.Task{}, false
}

func (s *Store) ToggleTask(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.tasks[i], true
		}
	}
	return model.Task{}, false
}

func (s *Store) DeleteTask(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed := s.tasks[i]
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return removed, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ---- events ----

func (s *Store) AddEvent(e model.Event) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	s.events = append(s.events, e)
	return e
}

func (s *Store) UpdateEvent(id string, patch model.EventPatch) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		e := &s.events[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.DateISO != nil {
			e.DateISO = *patch.DateISO
		}
		if patch.Time != nil {
			e.Time = *patch.Time
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		return *e, true
	}
	return model.Event{}, false
}

func (s *Store) DeleteEvent(id string) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			removed := s.events[i]
			s.events = append(s.events[:i:i], s.events[i+1:]...)
			return removed, true
		}
	}
	return model.Event{}, false
}

func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// ---- household ----

func (s *Store) Members() []model.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Member, len(s.members))
	copy(out, s.members)
	return out
}

func (s *Store) Inbox() []model.InboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.InboxMessage, len(s.inbox))
	copy(out, s.inbox)
	return out
}

func (s *Store) AddInboxMessage(m model.InboxMessage) model.InboxMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	s.inbox = append(s.inbox, m)
	return m
}
