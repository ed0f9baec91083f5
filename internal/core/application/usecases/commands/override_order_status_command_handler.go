package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
)

// OverrideOrderStatusCommandHandler handles admin status overrides.
// The stale-view guard runs inside the same transaction that reloads the
// order, so the count it compares against cannot itself be stale.
type OverrideOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	guard      services.StaleViewGuard
}

// NewOverrideOrderStatusCommandHandler creates a handler for status overrides.
func NewOverrideOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) OverrideOrderStatusCommandHandler {
	return OverrideOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		guard:      services.NewStaleViewGuard(),
	}
}

// Handle processes the override command. A conflict from the guard leaves the
// order untouched; the caller must reload and decide again.
func (h *OverrideOrderStatusCommandHandler) Handle(ctx context.Context, cmd OverrideOrderStatusCommand) error {
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

	if err = h.guard.Check(aggregate, cmd.ObservedActiveCount()); err != nil {
		return err
	}

	oldStatus := aggregate.OverallStatus()
	if err = aggregate.OverrideStatus(cmd.NewStatus(), cmd.RejectionMessage()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.New(events.OrderStatusOverriden, aggregate.ID(), map[string]any{
		"old_status":        oldStatus.String(),
		"new_status":        aggregate.OverallStatus().String(),
		"rejection_message": aggregate.RejectionMessage(),
	}))
	return nil
}
