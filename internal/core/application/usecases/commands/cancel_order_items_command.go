package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrCancelOrderItemsCommandIsNotConstructed = errors.New(
		"CancelOrderItemsCommand must be created via NewCancelOrderItemsCommand constructor",
	)
	ErrItemIDsAreRequired = errors.New("at least one item id is required")
	ErrReasonIsRequired   = errors.New("reason is required")
)

// CancelOrderItemsCommand represents a customer's request to cancel a subset
// of items on their own order. The reason is mandatory and is recorded on
// every item that is actually cancelled.
type CancelOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	itemIDs  []kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelOrderItemsCommand creates a command to cancel order items.
// Validates identifiers and requires a non-blank reason.
func NewCancelOrderItemsCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	itemIDs []kernel.UUID,
	reason string,
) (CancelOrderItemsCommand, error) {
	cmd := CancelOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCallerID(callerID),
		cmd.setItemIDs(itemIDs),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the targeted order.
func (c CancelOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the identifier of the customer issuing the cancellation.
func (c CancelOrderItemsCommand) CallerID() kernel.UUID {
	return c.callerID
}

// ItemIDs returns the identifiers of the items to cancel.
func (c CancelOrderItemsCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

// Reason returns the cancellation reason.
func (c CancelOrderItemsCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderItemsCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *CancelOrderItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemIDsAreRequired
	}
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.itemIDs = itemIDs
	return nil
}

func (c *CancelOrderItemsCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
