// Package kafkarelay forwards domain events from the in-process broadcaster
// to a kafka topic, making order lifecycle changes visible to other services.
// The relay is optional: without a configured broker the application runs on
// the in-process stream alone.
package kafkarelay

import (
	"context"
	"encoding/json"
	"log/slog"

	"canteen/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

// Subscriber is the slice of the broadcaster the relay needs.
type Subscriber interface {
	Subscribe() (<-chan events.Event, func())
}

// Relay consumes a broadcaster subscription and writes each event to kafka
// as JSON, keyed by order id so all events of one order land in one partition
// in order.
type Relay struct {
	writer *kafka.Writer
	done   chan struct{}
}

// NewRelay creates a relay writing to the given topic on the given brokers.
func NewRelay(brokers []string, topic string) *Relay {
	return &Relay{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Start subscribes to the broadcaster and forwards events until the context
// is cancelled or the subscription channel closes. Write failures are logged
// and skipped; the relay is a best-effort bridge, not an outbox.
func (r *Relay) Start(ctx context.Context, subscriber Subscriber) {
	ch, cancel := subscriber.Subscribe()
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-ch:
				if !ok {
					return
				}
				r.forward(ctx, event)
			}
		}
	}()
}

func (r *Relay) forward(ctx context.Context, event events.Event) {
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("marshal event for kafka", "event", event.Name, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err = r.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("write event to kafka",
			"event", event.Name, "orderId", event.OrderID, "error", err)
	}
}

// Close waits for the forwarding loop to finish and closes the writer.
func (r *Relay) Close() error {
	if r.done != nil {
		<-r.done
	}
	return r.writer.Close()
}
