package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/ports"
)

// CompleteOrderItemCommandHandler handles marking items ready. When the
// completion turns the whole order ready, a second all-ready event is
// published exactly once so pickup notifications don't repeat.
type CompleteOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	staff      ports.StaffDirectory
}

// NewCompleteOrderItemCommandHandler creates a handler for item completion.
func NewCompleteOrderItemCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher, staff ports.StaffDirectory,
) CompleteOrderItemCommandHandler {
	return CompleteOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		staff:      staff,
	}
}

// Handle processes the item completion command.
func (h *CompleteOrderItemCommandHandler) Handle(ctx context.Context, cmd CompleteOrderItemCommand) error {
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

	result, err := aggregate.CompleteItem(cmd.ItemID(), cmd.StaffID())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	staffName := resolveStaffName(ctx, h.staff, cmd.StaffID())
	h.publisher.Publish(events.New(events.OrderItemReady, aggregate.ID(), map[string]any{
		"item_id":         cmd.ItemID().String(),
		"item_name":       result.ItemName,
		"old_status":      result.OldStatus.String(),
		"remaining_items": result.RemainingItems,
		"updated_by":      staffName,
	}))

	if result.NewlyAllReady {
		h.publisher.Publish(events.New(events.OrderAllReady, aggregate.ID(), map[string]any{
			"overall_status": aggregate.OverallStatus().String(),
			"updated_by":     staffName,
		}))
	}
	return nil
}
