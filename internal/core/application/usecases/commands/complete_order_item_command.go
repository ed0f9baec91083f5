package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrCompleteOrderItemCommandIsNotConstructed = errors.New(
	"CompleteOrderItemCommand must be created via NewCompleteOrderItemCommand constructor",
)

// CompleteOrderItemCommand represents a kitchen staff request to mark a single
// item as ready for pickup.
type CompleteOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderItemCommand creates a command to complete an order item.
func NewCompleteOrderItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	staffID kernel.UUID,
) (CompleteOrderItemCommand, error) {
	cmd := CompleteOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setStaffID(staffID),
	); err != nil {
		return CompleteOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c CompleteOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the targeted item.
func (c CompleteOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// StaffID returns the identifier of the acting staff member.
func (c CompleteOrderItemCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *CompleteOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CompleteOrderItemCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
