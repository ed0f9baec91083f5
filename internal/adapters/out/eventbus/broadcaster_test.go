package eventbus_test

import (
	"testing"
	"time"

	"canteen/internal/adapters/out/eventbus"
	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := eventbus.NewBroadcaster()
	defer b.Close()

	first, cancelFirst := b.Subscribe()
	defer cancelFirst()
	second, cancelSecond := b.Subscribe()
	defer cancelSecond()

	orderID := kernel.NewUUID()
	b.Publish(events.New(events.OrderCreated, orderID, map[string]any{"item_count": 2}))

	for _, ch := range []<-chan events.Event{first, second} {
		select {
		case event := <-ch:
			assert.Equal(t, events.OrderCreated, event.Name)
			assert.Equal(t, orderID.String(), event.OrderID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestBroadcaster_PreservesPublicationOrder(t *testing.T) {
	b := eventbus.NewBroadcaster()
	defer b.Close()

	ch, cancel := b.Subscribe()
	defer cancel()

	orderID := kernel.NewUUID()
	names := []string{events.OrderItemReady, events.OrderItemReady, events.OrderAllReady}
	for _, name := range names {
		b.Publish(events.New(name, orderID, nil))
	}

	for _, want := range names {
		select {
		case event := <-ch:
			assert.Equal(t, want, event.Name)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestBroadcaster_NeverBlocksOnSlowSubscriber(t *testing.T) {
	b := eventbus.NewBroadcaster()
	defer b.Close()

	// subscribed but never read
	_, cancel := b.Subscribe()
	defer cancel()

	orderID := kernel.NewUUID()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 1000 {
			b.Publish(events.New(events.OrderItemUpdated, orderID, nil))
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestBroadcaster_CancelStopsDelivery(t *testing.T) {
	b := eventbus.NewBroadcaster()
	defer b.Close()

	ch, cancel := b.Subscribe()
	cancel()
	cancel() // idempotent

	_, open := <-ch
	require.False(t, open, "cancelled subscriber channel must be closed")

	// publishing after cancel must not panic
	b.Publish(events.New(events.OrderCreated, kernel.NewUUID(), nil))
}

func TestBroadcaster_CloseClosesSubscribers(t *testing.T) {
	b := eventbus.NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Close()

	_, open := <-ch
	assert.False(t, open)

	// subscribing after close yields a closed channel
	late, lateCancel := b.Subscribe()
	defer lateCancel()
	_, open = <-late
	assert.False(t, open)
}
