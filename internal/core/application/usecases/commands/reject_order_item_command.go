package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrRejectOrderItemCommandIsNotConstructed = errors.New(
	"RejectOrderItemCommand must be created via NewRejectOrderItemCommand constructor",
)

// RejectOrderItemCommand represents a kitchen staff request to reject a single
// item with a mandatory reason the customer will see.
type RejectOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	staffID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderItemCommand creates a command to reject an order item.
func NewRejectOrderItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	staffID kernel.UUID,
	reason string,
) (RejectOrderItemCommand, error) {
	cmd := RejectOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setStaffID(staffID),
		cmd.setReason(reason),
	); err != nil {
		return RejectOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c RejectOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the targeted item.
func (c RejectOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// StaffID returns the identifier of the acting staff member.
func (c RejectOrderItemCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Reason returns the rejection reason.
func (c RejectOrderItemCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RejectOrderItemCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *RejectOrderItemCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
