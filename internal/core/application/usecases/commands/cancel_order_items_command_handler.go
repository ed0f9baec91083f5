package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/ports"
)

// CancelOrderItemsCommandHandler handles customer-initiated cancellation of
// order items. Ownership and order-state checks live in the aggregate; the
// handler provides the transaction boundary and event publication.
type CancelOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderItemsCommandHandler creates a handler for item cancellation.
func NewCancelOrderItemsCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) CancelOrderItemsCommandHandler {
	return CancelOrderItemsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command. The cancelled event carries only
// the ids of items that actually changed; already-terminal targets are skipped
// by the aggregate.
func (h *CancelOrderItemsCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cancelled, err := aggregate.CancelItems(cmd.CallerID(), cmd.ItemIDs(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	cancelledIDs := make([]string, len(cancelled))
	for i, id := range cancelled {
		cancelledIDs[i] = id.String()
	}

	h.publisher.Publish(events.New(events.OrderItemsCancelled, aggregate.ID(), map[string]any{
		"cancelled_item_ids": cancelledIDs,
		"reason":             cmd.Reason(),
		"overall_status":     aggregate.OverallStatus().String(),
	}))
	return nil
}
