package voice

import (
	"context"

	"household-relay/internal/model"
)

// UseCase is the voice pipeline surface consumed by UI callers.
// Both operations are total: every input maps to an interpretation
// (worst case unknown_intent) and every interpretation to an outcome.
type UseCase interface {
	// Route maps a free-text utterance plus screen context to a ranked,
	// slot-filled interpretation, recording a debug trace entry.
	Route(ctx context.Context, text string, rc RouteContext) Interpretation

	// Execute carries out a confirmed interpretation: a read-only lookup,
	// a direct store mutation with undo, or a deferred pending action.
	Execute(ctx context.Context, interp Interpretation) ExecutionOutcome
}

// TaskStore is the capability set over the directly-mutable task store.
// All operations are synchronous and return the mutated state.
type TaskStore interface {
	AddTask(t model.Task) model.Task
	UpdateTask(id string, patch model.TaskPatch) (model.Task, bool)
	ToggleTask(id string) (model.Task, bool)
	DeleteTask(id string) (model.Task, bool)
	Tasks() []model.Task
}

// EventStore is the capability set over the directly-mutable event store.
type EventStore interface {
	AddEvent(e model.Event) model.Event
	UpdateEvent(id string, patch model.EventPatch) (model.Event, bool)
	DeleteEvent(id string) (model.Event, bool)
	Events() []model.Event
}

// HouseholdReader gives read access to members and the relay inbox.
type HouseholdReader interface {
	Members() []model.Member
	Inbox() []model.InboxMessage
}

// Dependencies bundles the domain collaborators the execution handler
// mutates or reads directly, plus the navigation callback.
type Dependencies struct {
	Tasks     TaskStore
	Events    EventStore
	Household HouseholdReader
	Navigate  func(route string)
}
