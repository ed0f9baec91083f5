package commands

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// PlaceOrderItem carries the catalog snapshot for a single line of a new
// order. Name and price are captured here and never re-read from the catalog.
type PlaceOrderItem struct {
	ItemID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Price       float64
	Quantity    int
}

// PlaceOrderCommand represents a customer's request to place a new order.
// Encapsulates the item snapshot, the monetary total and the delivery address.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(orderID, userID, items, 170, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	userID      kernel.UUID
	items       []PlaceOrderItem
	totalAmount float64
	address     order.Address

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one item and a non-negative total.
// Per-item validation is left to the domain layer.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []PlaceOrderItem,
	totalAmount float64,
	address order.Address,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ordering customer's identifier.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the catalog snapshot lines of the order.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return c.items
}

// TotalAmount returns the monetary total of the order.
func (c PlaceOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Address returns the delivery/pickup address.
func (c PlaceOrderCommand) Address() order.Address {
	return c.address
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *PlaceOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return fmt.Errorf("total amount must not be negative, got %v", totalAmount)
	}

	c.totalAmount = totalAmount
	return nil
}
