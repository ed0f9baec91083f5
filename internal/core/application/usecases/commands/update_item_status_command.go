package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand represents a kitchen staff request to move a single
// item to a new lifecycle status. Whether the transition is actually allowed
// is decided by the item's status machine, not here.
type UpdateItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	staffID   kernel.UUID
	newStatus order.ItemStatus

	guard guard.ConstructorGuard
}

// NewUpdateItemStatusCommand creates a command to transition an order item.
func NewUpdateItemStatusCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	staffID kernel.UUID,
	newStatus order.ItemStatus,
) (UpdateItemStatusCommand, error) {
	cmd := UpdateItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setStaffID(staffID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c UpdateItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the targeted item.
func (c UpdateItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

// StaffID returns the identifier of the acting staff member.
func (c UpdateItemStatusCommand) StaffID() kernel.UUID {
	return c.staffID
}

// NewStatus returns the requested target status.
func (c UpdateItemStatusCommand) NewStatus() order.ItemStatus {
	return c.newStatus
}

func (c *UpdateItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemStatusCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemStatusCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *UpdateItemStatusCommand) setNewStatus(newStatus order.ItemStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
