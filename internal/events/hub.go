// Package events fans user mutations out to live subscribers.
package events

import (
	"sync"
	"time"

	"github.com/alfagnish/usuarios/internal/users"
	"github.com/google/uuid"
)

// Type names the kind of mutation an Event reports.
type Type string

const (
	TypeCreated Type = "creado"
	TypeUpdated Type = "actualizado"
	TypeDeleted Type = "eliminado"
)

// subscriberBuffer is how many events a subscriber may lag behind before
// new events are dropped for it.
const subscriberBuffer = 16

// Event describes one successful store mutation.
type Event struct {
	ID      string     `json:"id"`
	Type    Type       `json:"tipo"`
	Usuario users.User `json:"usuario"`
	Time    time.Time  `json:"fecha"`
}

// New builds an event stamped with a fresh id and the current time.
func New(t Type, u users.User) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    t,
		Usuario: u,
		Time:    time.Now().UTC(),
	}
}

// Hub broadcasts events to every current subscriber. All public methods are
// safe for concurrent use.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel func removes it
// and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers e to every subscriber without blocking. Subscribers whose
// buffer is full miss the event.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
