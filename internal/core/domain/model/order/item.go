package order

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrItemTerminal is returned when an operation targets an item that is
// already rejected or cancelled. This is an expected race, not a hard fault:
// the caller should refresh its view and retry.
var ErrItemTerminal = errors.New("item is already cancelled or rejected, refresh and retry")

// OrderItem is a child entity of the Order aggregate. Product name and price
// are a point-in-time snapshot taken from the catalog at placement, never
// re-read afterward. Items are created only at order placement; afterwards
// only their status and bookkeeping fields mutate.
type OrderItem struct {
	id              kernel.UUID
	productID       kernel.UUID
	productName     string
	price           float64
	quantity        int
	status          ItemStatus
	statusUpdatedBy *kernel.UUID
	// rejectionMessage records the staff rejection reason, or the customer's
	// cancellation reason when the item was cancelled.
	rejectionMessage string
	// preparationTime is an optional analytics measurement in seconds,
	// carried but never mutated by the lifecycle engine itself.
	preparationTime *float64
}

// NewOrderItem creates a pending item from a catalog snapshot.
func NewOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	price float64,
	quantity int,
) (*OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if productName == "" {
		return nil, errs.NewValueIsRequiredError("productName")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%v is negative", price))
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not at least 1", quantity))
	}

	return &OrderItem{
		id:          id,
		productID:   productID,
		productName: productName,
		price:       price,
		quantity:    quantity,
		status:      ItemPending,
	}, nil
}

// RestoreOrderItem reconstructs an item from persistence without running
// placement-time validation on the status fields.
func RestoreOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	price float64,
	quantity int,
	status ItemStatus,
	statusUpdatedBy *kernel.UUID,
	rejectionMessage string,
	preparationTime *float64,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, productID, productName, price, quantity)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	item.status = status
	item.statusUpdatedBy = statusUpdatedBy
	item.rejectionMessage = rejectionMessage
	item.preparationTime = preparationTime
	return item, nil
}

// ID returns the item's unique identifier within the order.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced catalog product identifier.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot taken at placement.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Price returns the unit price snapshot taken at placement.
func (i *OrderItem) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Status returns the item's current lifecycle status.
func (i *OrderItem) Status() ItemStatus {
	return i.status
}

// StatusUpdatedBy returns the staff member who last transitioned the item,
// or nil before the first staff action.
func (i *OrderItem) StatusUpdatedBy() *kernel.UUID {
	return i.statusUpdatedBy
}

// RejectionMessage returns the rejection or cancellation reason, if any.
func (i *OrderItem) RejectionMessage() string {
	return i.rejectionMessage
}

// PreparationTime returns the recorded preparation duration in seconds, if any.
func (i *OrderItem) PreparationTime() *float64 {
	return i.preparationTime
}

// transitionTo moves the item to target on behalf of a staff member.
// Terminal items surface ErrItemTerminal; transitions outside the graph
// are rejected as invalid.
func (i *OrderItem) transitionTo(target ItemStatus, staffID kernel.UUID) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := staffID.Validate(); err != nil {
		return err
	}
	if i.status.IsTerminal() {
		return ErrItemTerminal
	}
	if !i.status.CanTransitionTo(target) {
		return errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("cannot move item from %s to %s", i.status, target))
	}

	i.status = target
	i.statusUpdatedBy = &staffID
	return nil
}

// reject marks the item rejected with the staff member's reason.
func (i *OrderItem) reject(staffID kernel.UUID, reason string) error {
	if err := i.transitionTo(ItemRejected, staffID); err != nil {
		return err
	}
	i.rejectionMessage = reason
	return nil
}

// cancel marks the item cancelled on behalf of the customer, recording the
// reason. Reports whether the item actually changed (terminal items are
// skipped, not errors: CancelItems counts effective cancellations).
func (i *OrderItem) cancel(reason string) bool {
	if i.status.IsTerminal() {
		return false
	}
	i.status = ItemCancelled
	i.rejectionMessage = reason
	return true
}

// markReady records that preparation of the item finished.
func (i *OrderItem) markReady(staffID kernel.UUID) error {
	return i.transitionTo(ItemReady, staffID)
}
