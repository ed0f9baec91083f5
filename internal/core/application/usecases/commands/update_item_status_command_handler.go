package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
)

// UpdateItemStatusCommandHandler handles kitchen staff item transitions.
// The published event carries the acting staff member's display name, resolved
// best-effort through the staff directory.
type UpdateItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	staff      ports.StaffDirectory
}

// NewUpdateItemStatusCommandHandler creates a handler for item transitions.
func NewUpdateItemStatusCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher, staff ports.StaffDirectory,
) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		staff:      staff,
	}
}

// Handle processes the item transition command.
func (h *UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) error {
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

	oldStatus, err := aggregate.TransitionItem(cmd.ItemID(), cmd.StaffID(), cmd.NewStatus())
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
		"item_id":        cmd.ItemID().String(),
		"old_status":     oldStatus.String(),
		"new_status":     cmd.NewStatus().String(),
		"overall_status": aggregate.OverallStatus().String(),
		"updated_by":     resolveStaffName(ctx, h.staff, cmd.StaffID()),
	}))
	return nil
}

// resolveStaffName resolves a staff display name, falling back to the raw
// identifier when the directory cannot answer. Events must not fail because a
// name lookup did.
func resolveStaffName(ctx context.Context, staff ports.StaffDirectory, staffID kernel.UUID) string {
	if staff == nil {
		return staffID.String()
	}
	name, err := staff.FullName(ctx, staffID)
	if err != nil || name == "" {
		return staffID.String()
	}
	return name
}
