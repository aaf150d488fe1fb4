package model

import "time"

// Member is a household member known to the family hub.
type Member struct {
	Name string
	Role string // "parent", "child", "guest"
}

// InboxMessage is a note left in the shared relay inbox.
type InboxMessage struct {
	From      string
	Text      string
	CreatedAt time.Time
}
