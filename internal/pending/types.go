package pending

import (
	"time"

	"household-relay/internal/voice"
)

// Action is a deferred mutation parked for a domain screen to pick up when it
// next loads. The payload is opaque to the queue; only the consuming screen
// interprets it.
type Action struct {
	ID        string         `json:"id"`
	Domain    voice.Domain   `json:"domain"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Listener receives every action enqueued for the domain it subscribed to.
// Delivery does not consume the action.
type Listener func(Action)
