package model

import "time"

// Event is a calendar entry held in the in-memory event store.
type Event struct {
	ID        string    // Generated uuid
	Title     string    // What is happening
	Date      string    // Display form ("Tomorrow", "Next Monday")
	DateISO   string    // Canonical 2006-01-02 form; empty when unresolved
	Time      string    // Display time; empty for all-day entries
	Location  string    // Where; empty when unknown
	CreatedAt time.Time // Set by the store on add
}

// EventPatch carries the mutable event fields for a partial update.
// Nil means "leave unchanged"; a pointer to the empty string clears the field.
type EventPatch struct {
	Title    *string
	Date     *string
	DateISO  *string
	Time     *string
	Location *string
}
