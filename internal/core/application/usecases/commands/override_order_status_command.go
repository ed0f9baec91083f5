package commands

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var ErrOverrideOrderStatusCommandIsNotConstructed = errors.New(
	"OverrideOrderStatusCommand must be created via NewOverrideOrderStatusCommand constructor",
)

// OverrideOrderStatusCommand represents an admin request to set the whole
// order status directly, bypassing derivation. The observed active item count
// is the optimistic-concurrency token: the override only applies if the order
// still looks the way the admin saw it.
type OverrideOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	newStatus           order.Status
	rejectionMessage    string
	observedActiveCount int

	guard guard.ConstructorGuard
}

// NewOverrideOrderStatusCommand creates a command to override an order status.
// The rejection message may be blank here; the aggregate requires it only when
// the target status is rejected.
func NewOverrideOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	rejectionMessage string,
	observedActiveCount int,
) (OverrideOrderStatusCommand, error) {
	cmd := OverrideOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setObservedActiveCount(observedActiveCount),
	); err != nil {
		return OverrideOrderStatusCommand{}, err
	}

	cmd.rejectionMessage = rejectionMessage
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c OverrideOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the status the admin wants to set.
func (c OverrideOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// RejectionMessage returns the whole-order rejection message, if any.
func (c OverrideOrderStatusCommand) RejectionMessage() string {
	return c.rejectionMessage
}

// ObservedActiveCount returns the active item count the admin's view showed.
func (c OverrideOrderStatusCommand) ObservedActiveCount() int {
	return c.observedActiveCount
}

func (c *OverrideOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *OverrideOrderStatusCommand) setObservedActiveCount(count int) error {
	if count < 0 {
		return fmt.Errorf("observed active count must not be negative, got %d", count)
	}

	c.observedActiveCount = count
	return nil
}
