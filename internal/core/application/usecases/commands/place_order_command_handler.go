package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Builds the aggregate from the command's catalog snapshot, persists it and
// announces the new order to observers after commit.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Uses a transaction to ensure the order and all of its items are persisted
// together or not at all. The created event is published only after commit.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := order.NewOrderItem(
			line.ItemID, line.ProductID, line.ProductName, line.Price, line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), items, cmd.TotalAmount(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.New(events.OrderCreated, aggregate.ID(), map[string]any{
		"user_id":      aggregate.UserID().String(),
		"total_amount": aggregate.TotalAmount(),
		"item_count":   len(aggregate.Items()),
	}))
	return nil
}
