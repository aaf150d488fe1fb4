package pending

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"household-relay/internal/voice"
)

// Queue keeps per-domain FIFO lists of deferred actions. Enqueue notifies
// subscribers without draining; Consume drains. An action that is both
// delivered to a live subscriber and later consumed is applied twice, and
// that is the caller's contract to manage.
type Queue struct {
	mu        sync.Mutex
	actions   map[voice.Domain][]Action
	listeners map[voice.Domain][]*subscription
	now       func() time.Time
}

type subscription struct {
	fn Listener
}

func New() *Queue {
	return &Queue{
		actions:   make(map[voice.Domain][]Action),
		listeners: make(map[voice.Domain][]*subscription),
		now:       time.Now,
	}
}

// Enqueue appends an action for the domain and notifies its subscribers in
// registration order.
func (q *Queue) Enqueue(domain voice.Domain, actionType string, payload map[string]any) Action {
	a := Action{
		ID:        uuid.NewString(),
		Domain:    domain,
		Type:      actionType,
		Payload:   payload,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	q.actions[domain] = append(q.actions[domain], a)
	subs := make([]*subscription, len(q.listeners[domain]))
	copy(subs, q.listeners[domain])
	q.mu.Unlock()

	for _, s := range subs {
		s.fn(a)
	}
	return a
}

// Consume removes and returns every queued action for the domain in enqueue
// order. A second call without intervening enqueues returns an empty slice.
func (q *Queue) Consume(domain voice.Domain) []Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.actions[domain]
	delete(q.actions, domain)
	if out == nil {
		out = []Action{}
	}
	return out
}

// Peek returns the queued actions for the domain without draining them.
func (q *Queue) Peek(domain voice.Domain) []Action {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Action, len(q.actions[domain]))
	copy(out, q.actions[domain])
	return out
}

// Subscribe registers a listener for future enqueues on the domain and
// returns an unsubscribe func. Already-queued actions are not replayed.
func (q *Queue) Subscribe(domain voice.Domain, fn Listener) func() {
	s := &subscription{fn: fn}

	q.mu.Lock()
	q.listeners[domain] = append(q.listeners[domain], s)
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		subs := q.listeners[domain]
		for i, cur := range subs {
			if cur == s {
				q.listeners[domain] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}
