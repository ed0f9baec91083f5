package commands

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrProcessRefundCommandIsNotConstructed = errors.New(
	"ProcessRefundCommand must be created via NewProcessRefundCommand constructor",
)

// ProcessRefundCommand represents an admin request to refund part or all of a
// paid order. Amounts larger than the remaining total are legal; the aggregate
// floors the total at zero.
type ProcessRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  float64

	guard guard.ConstructorGuard
}

// NewProcessRefundCommand creates a command to refund an order.
func NewProcessRefundCommand(orderID kernel.UUID, amount float64) (ProcessRefundCommand, error) {
	cmd := ProcessRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return ProcessRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRefundCommand) Validate() error {
	return c.guard.Validate(ErrProcessRefundCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c ProcessRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the amount to refund.
func (c ProcessRefundCommand) Amount() float64 {
	return c.amount
}

func (c *ProcessRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessRefundCommand) setAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("refund amount must not be negative, got %v", amount)
	}

	c.amount = amount
	return nil
}
