package model

import "time"

// Task is a household to-do item held in the in-memory task store.
type Task struct {
	ID         string    // Generated uuid
	Title      string    // What to do
	DueDate    string    // Display form ("Today", "Tomorrow", "Friday"); empty when undated
	DueDateISO string    // Canonical 2006-01-02 form; empty when undated
	Time       string    // Display time ("5:00 PM", "Morning"); empty when untimed
	Assignee   string    // Member name the task is assigned to; empty when unassigned
	Recurrence string    // Display recurrence ("Every week"); empty for one-shot tasks
	Completed  bool      // Toggled by completion, reversible
	CreatedAt  time.Time // Set by the store on add
}

// TaskPatch carries the mutable task fields for a partial update.
// Nil means "leave unchanged"; a pointer to the empty string clears the field.
type TaskPatch struct {
	Title      *string
	DueDate    *string
	DueDateISO *string
	Time       *string
	Assignee   *string
	Recurrence *string
}
