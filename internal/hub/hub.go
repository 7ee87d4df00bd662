// Package hub implements the broadcast fan-out that keeps every
// connected surface (ordering, kitchen, register) consistent without
// polling.  Each subscriber owns a bounded outbound queue; publishing
// enqueues to all of them and never blocks on a slow or dead
// subscriber.  A full queue drops the message for that subscriber
// only, matching the fire-and-forget broadcast contract.
package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// sendBuffer is the per-subscriber queue size.  A subscriber that
// falls this far behind starts losing messages instead of stalling the
// mutation path.
const sendBuffer = 16

// Envelope is the wire form of every broadcast: a type tag and an
// arbitrary payload.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Subscriber is one observer's handle: a bounded queue of marshaled
// envelopes.  Obtain one with Hub.Subscribe and release it with
// Hub.Unsubscribe.
type Subscriber struct {
	send chan []byte
}

// C exposes the subscriber's outbound queue for reading.  The channel
// is closed when the subscriber is unsubscribed.
func (s *Subscriber) C() <-chan []byte { return s.send }

// Hub maintains the set of active subscribers.  Registration and
// deregistration are independent of the store's transaction model and
// need no coordination with mutations beyond this list membership.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

// New returns a hub with no subscribers.
func New() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// Subscribe registers a new observer and returns its handle.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes an observer and closes its queue.  Safe to call
// once per subscriber; publishes racing with removal either enqueue
// before the close or skip the subscriber entirely.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.send)
	}
	h.mu.Unlock()
}

// Publish marshals a typed envelope and enqueues it to every
// subscriber.  Delivery is best-effort: a subscriber whose queue is
// full is skipped, and failures never surface to the caller.  Publish
// is called from inside the store's critical section, so envelopes
// reach each queue in mutation order.
func (h *Hub) Publish(eventType string, payload any) {
	msg, err := json.Marshal(Envelope{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("hub: marshal %s event: %v", eventType, err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.send <- msg:
		default:
			// subscriber too slow, drop rather than block the mutation
		}
	}
}

// SubscriberCount reports the number of connected observers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
