package commands

import (
	"context"

	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// ConfirmPaymentCommandHandler records payment outcomes reported by the
// payment collaborator. Successful payments are announced to observers; failed
// attempts are recorded silently, the customer retries through the payment
// flow.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	if err = aggregate.SetPaymentStatus(cmd.Outcome()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Outcome() == order.PaymentPaid {
		h.publisher.Publish(events.New(events.OrderPaid, aggregate.ID(), map[string]any{
			"total_amount": aggregate.TotalAmount(),
		}))
	}
	return nil
}
