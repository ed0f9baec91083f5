package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrPaymentOutcomeIsInvalid = errors.New("payment outcome must be paid or failed")
)

// ConfirmPaymentCommand represents the payment collaborator reporting the
// outcome of a payment attempt. Only paid and failed are legal outcomes here;
// refunded is set exclusively through refund processing.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to record a payment outcome.
func NewConfirmPaymentCommand(
	orderID kernel.UUID, outcome order.PaymentStatus,
) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOutcome(outcome),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the reported payment outcome.
func (c ConfirmPaymentCommand) Outcome() order.PaymentStatus {
	return c.outcome
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setOutcome(outcome order.PaymentStatus) error {
	if outcome != order.PaymentPaid && outcome != order.PaymentFailed {
		return ErrPaymentOutcomeIsInvalid
	}

	c.outcome = outcome
	return nil
}
