package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/ports"
)

// ProcessRefundCommandHandler handles admin refunds on paid orders.
type ProcessRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewProcessRefundCommandHandler creates a handler for refund processing.
func NewProcessRefundCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) ProcessRefundCommandHandler {
	return ProcessRefundCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the refund command.
func (h *ProcessRefundCommandHandler) Handle(ctx context.Context, cmd ProcessRefundCommand) error {
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

	result, err := aggregate.ProcessRefund(cmd.Amount())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(events.New(events.OrderRefunded, aggregate.ID(), map[string]any{
		"refunded_amount": result.RefundedAmount,
		"new_total":       result.NewTotal,
		"new_status":      result.NewStatus.String(),
	}))
	return nil
}
