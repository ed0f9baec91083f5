package ports

import (
	"canteen/internal/core/domain/events"
)

// EventPublisher broadcasts domain events to interested observers after the
// mutation they describe has been committed. Publication is fire-and-forget:
// a slow or absent observer must never fail or delay the command that
// produced the event.
type EventPublisher interface {
	Publish(event events.Event)
}
