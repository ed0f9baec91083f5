// Package eventbus provides the in-process event broadcaster behind
// ports.EventPublisher. Command handlers publish committed domain events into
// it; the HTTP event stream and the kafka relay subscribe.
package eventbus

import (
	"log/slog"
	"sync"

	"canteen/internal/core/domain/events"
)

const subscriberBuffer = 64

// Broadcaster fans events out to subscribers. Publish never blocks: each
// subscriber has a buffered channel, and events are dropped for subscribers
// that fall behind. Observers are informational; a slow event stream must not
// stall order processing.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan events.Event
	closed bool
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[int]chan events.Event),
	}
}

// Publish delivers the event to every current subscriber. Subscribers whose
// buffers are full miss the event.
func (b *Broadcaster) Publish(event events.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping event for slow subscriber",
				"event", event.Name, "orderId", event.OrderID, "subscriber", id)
		}
	}
}

// Subscribe registers a new subscriber and returns its channel together with
// a cancel function. The channel is closed when cancel is called or the
// broadcaster shuts down; cancel is idempotent.
func (b *Broadcaster) Subscribe() (<-chan events.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan events.Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Close shuts the broadcaster down and closes all subscriber channels.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
