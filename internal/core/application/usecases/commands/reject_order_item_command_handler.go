package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// RejectOrderItemCommandHandler handles kitchen staff item rejections.
// Rejection is a terminal transition; the published event carries the reason
// so customer views can surface it immediately.
type RejectOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	staff      ports.StaffDirectory
}

// NewRejectOrderItemCommandHandler creates a handler for item rejections.
func NewRejectOrderItemCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher, staff ports.StaffDirectory,
) RejectOrderItemCommandHandler {
	return RejectOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		staff:      staff,
	}
}

// Handle processes the item rejection command.
func (h *RejectOrderItemCommandHandler) Handle(ctx context.Context, cmd RejectOrderItemCommand) error {
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

	oldStatus, err := aggregate.RejectItem(cmd.ItemID(), cmd.StaffID(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.New(events.OrderItemUpdated, aggregate.ID(), map[string]any{
		"item_id":           cmd.ItemID().String(),
		"old_status":        oldStatus.String(),
		"new_status":        order.ItemRejected.String(),
		"rejection_message": cmd.Reason(),
		"overall_status":    aggregate.OverallStatus().String(),
		"updated_by":        resolveStaffName(ctx, h.staff, cmd.StaffID()),
	}))
	return nil
}
