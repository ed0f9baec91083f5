// Package events defines the domain events published after committed order
// mutations, and the single envelope they all share. Payloads are free-form
// maps so the HTTP event stream and the kafka relay can forward them without
// per-event codecs.
package events

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
)

// Event names. Dotted <aggregate>.<change> form, stable across transports.
const (
	OrderCreated         = "order.created"
	OrderItemsCancelled  = "order.items_cancelled"
	OrderItemUpdated     = "order.item_updated"
	OrderItemReady       = "order.item_ready"
	OrderAllReady        = "order.all_ready"
	OrderStatusOverriden = "order.status_overridden"
	OrderRefunded        = "order.refunded"
	OrderPaid            = "order.paid"
	KitchenStats         = "kitchen.stats"
)

// Event is the envelope broadcast to in-process subscribers and relayed to
// kafka. Events are emitted only after the mutation they describe has been
// committed.
type Event struct {
	Name       string         `json:"name"`
	OrderID    string         `json:"order_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// New builds an event for the given order stamped with the current time.
func New(name string, orderID kernel.UUID, payload map[string]any) Event {
	return Event{
		Name:       name,
		OrderID:    orderID.String(),
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
