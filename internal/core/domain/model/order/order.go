package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNotOrderOwner is returned when a customer operation is attempted by
	// someone other than the order's owner.
	ErrNotOrderOwner = errors.New("order does not belong to the caller")

	// ErrOrderClosed is returned when a mutation targets an order whose
	// overall status permits no further changes.
	ErrOrderClosed = errors.New("order is closed and can no longer be modified")

	// ErrNothingToCancel is returned when a cancellation request matched no
	// item that could actually be cancelled.
	ErrNothingToCancel = errors.New("no active items matched the cancellation request")

	// ErrOrderNotPaid is returned when a refund is attempted on an order
	// whose payment status is not paid.
	ErrOrderNotPaid = errors.New("order has not been paid")
)

// Address is the delivery/pickup address captured at placement.
// All fields are optional free text.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Order is the aggregate root for canteen order fulfillment. It owns its
// items outright: the item set is fixed at creation and items are mutated in
// place within the aggregate. Outside of admin overrides, the overall status
// is recomputed from item statuses within the same transition that mutated
// an item, so it is never stale after a committed mutation.
type Order struct {
	id               kernel.UUID
	userID           kernel.UUID
	items            []*OrderItem
	overallStatus    Status
	rejectionMessage string
	paymentStatus    PaymentStatus
	totalAmount      float64
	address          Address
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// CompletionResult reports the outcome of CompleteItem for event publication.
type CompletionResult struct {
	OldStatus ItemStatus
	ItemName  string
	// RemainingItems counts items that are neither ready nor rejected.
	RemainingItems int
	AllReady       bool
	// NewlyAllReady is true only when this completion made the order
	// all-ready, so observers are told exactly once.
	NewlyAllReady bool
}

// RefundResult reports the outcome of ProcessRefund for event publication.
type RefundResult struct {
	RefundedAmount float64
	NewTotal       float64
	NewStatus      Status
}

// NewOrder creates an order at placement time: every item pending, overall
// status pending, payment pending. The item set is fixed from here on.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []*OrderItem,
	totalAmount float64,
	address Address,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := validateUniqueItemIDs(items); err != nil {
		return nil, err
	}
	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%v is negative", totalAmount))
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		userID:        userID,
		items:         items,
		overallStatus: Pending,
		paymentStatus: PaymentPending,
		totalAmount:   totalAmount,
		address:       address,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []*OrderItem,
	overallStatus Status,
	rejectionMessage string,
	paymentStatus PaymentStatus,
	totalAmount float64,
	address Address,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, items, totalAmount, address)
	if err != nil {
		return nil, err
	}
	if err = overallStatus.Validate(); err != nil {
		return nil, err
	}
	if err = paymentStatus.Validate(); err != nil {
		return nil, err
	}

	o.overallStatus = overallStatus
	o.rejectionMessage = rejectionMessage
	o.paymentStatus = paymentStatus
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

func validateUniqueItemIDs(items []*OrderItem) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("duplicate item id %s", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}
	return nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns the order's items in insertion order. The slice is a copy;
// the items themselves are the aggregate's and must not be mutated directly.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// ItemByID finds an item within the aggregate.
func (o *Order) ItemByID(itemID kernel.UUID) (*OrderItem, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
}

// OverallStatus returns the aggregate order status.
func (o *Order) OverallStatus() Status {
	return o.overallStatus
}

// RejectionMessage returns the order-level rejection message set by an admin
// whole-order rejection. Item-level messages live on the items.
func (o *Order) RejectionMessage() string {
	return o.rejectionMessage
}

// PaymentStatus returns the order's payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TotalAmount returns the order's monetary total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Address returns the address captured at placement.
func (o *Order) Address() Address {
	return o.address
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last committed mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ActiveItemCount counts items that are neither cancelled nor rejected.
// This is the optimistic-concurrency token checked before admin overrides.
func (o *Order) ActiveItemCount() int {
	count := 0
	for _, item := range o.items {
		if item.Status().IsActive() {
			count++
		}
	}
	return count
}

// CancelItems cancels the targeted items on behalf of the order's owner,
// recording the reason on each. Items already terminal are skipped; if no
// item actually changed, ErrNothingToCancel is returned and the aggregate is
// untouched. Returns the ids of the items that were cancelled.
func (o *Order) CancelItems(
	callerID kernel.UUID,
	itemIDs []kernel.UUID,
	reason string,
) ([]kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := callerID.Validate(); err != nil {
		return nil, err
	}
	if !callerID.IsEqual(o.userID) {
		return nil, ErrNotOrderOwner
	}
	if o.overallStatus.IsClosed() {
		return nil, ErrOrderClosed
	}
	if len(itemIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if isBlank(reason) {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	targets := make(map[kernel.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		targets[id] = struct{}{}
	}

	cancelled := make([]kernel.UUID, 0, len(itemIDs))
	for _, item := range o.items {
		if _, ok := targets[item.ID()]; !ok {
			continue
		}
		if item.cancel(reason) {
			cancelled = append(cancelled, item.ID())
		}
	}
	if len(cancelled) == 0 {
		return nil, ErrNothingToCancel
	}

	o.recomputeOverallStatus()
	return cancelled, nil
}

// TransitionItem moves an item to newStatus on behalf of a staff member and
// recomputes the overall status. Returns the item's previous status.
func (o *Order) TransitionItem(
	itemID kernel.UUID,
	staffID kernel.UUID,
	newStatus ItemStatus,
) (ItemStatus, error) {
	if err := o.Validate(); err != nil {
		return ItemStatusUnknown, err
	}

	item, err := o.ItemByID(itemID)
	if err != nil {
		return ItemStatusUnknown, err
	}

	oldStatus := item.Status()
	if err = item.transitionTo(newStatus, staffID); err != nil {
		return ItemStatusUnknown, err
	}

	o.recomputeOverallStatus()
	return oldStatus, nil
}

// RejectItem rejects an item with the staff member's reason and recomputes
// the overall status. Returns the item's previous status.
func (o *Order) RejectItem(
	itemID kernel.UUID,
	staffID kernel.UUID,
	reason string,
) (ItemStatus, error) {
	if err := o.Validate(); err != nil {
		return ItemStatusUnknown, err
	}
	if isBlank(reason) {
		return ItemStatusUnknown, errs.NewValueIsRequiredError("reason")
	}

	item, err := o.ItemByID(itemID)
	if err != nil {
		return ItemStatusUnknown, err
	}

	oldStatus := item.Status()
	if err = item.reject(staffID, reason); err != nil {
		return ItemStatusUnknown, err
	}

	o.recomputeOverallStatus()
	return oldStatus, nil
}

// CompleteItem marks an item ready. When every item ends up ready or
// rejected, the overall status is force-set to Ready; derivation agrees with
// the force-set in that case, which is kept as an explicit invariant rather
// than a separate rule.
func (o *Order) CompleteItem(itemID kernel.UUID, staffID kernel.UUID) (CompletionResult, error) {
	if err := o.Validate(); err != nil {
		return CompletionResult{}, err
	}

	item, err := o.ItemByID(itemID)
	if err != nil {
		return CompletionResult{}, err
	}

	wasAllReady := o.allReadyOrRejected()
	oldStatus := item.Status()
	if err = item.markReady(staffID); err != nil {
		return CompletionResult{}, err
	}

	o.recomputeOverallStatus()

	allReady := o.allReadyOrRejected()
	if allReady {
		o.overallStatus = Ready
	}

	remaining := 0
	for _, it := range o.items {
		if it.Status() != ItemReady && it.Status() != ItemRejected {
			remaining++
		}
	}

	return CompletionResult{
		OldStatus:      oldStatus,
		ItemName:       item.ProductName(),
		RemainingItems: remaining,
		AllReady:       allReady,
		NewlyAllReady:  allReady && !wasAllReady,
	}, nil
}

// OverrideStatus sets the whole-order status directly on behalf of an admin.
// This is the one path that may leave the overall status out of sync with
// item derivation; the stale-view guard must pass before calling it.
// Rejecting the whole order requires a non-blank message, which is stored at
// the order level without touching item messages.
func (o *Order) OverrideStatus(newStatus Status, rejectionMessage string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == Rejected {
		if isBlank(rejectionMessage) {
			return errs.NewValueIsRequiredError("rejectionMessage")
		}
		o.overallStatus = Rejected
		o.rejectionMessage = rejectionMessage
	} else {
		o.overallStatus = newStatus
		o.rejectionMessage = ""
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

// ProcessRefund applies a refund to a paid order. The total is decremented
// and floored at zero, payment status becomes refunded, and the overall
// status settles to Rejected when no item survived, Completed otherwise.
func (o *Order) ProcessRefund(amount float64) (RefundResult, error) {
	if err := o.Validate(); err != nil {
		return RefundResult{}, err
	}
	if o.paymentStatus != PaymentPaid {
		return RefundResult{}, ErrOrderNotPaid
	}
	if amount < 0 {
		return RefundResult{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v is negative", amount))
	}

	o.totalAmount = max(0, o.totalAmount-amount)
	o.paymentStatus = PaymentRefunded

	allTerminal := true
	for _, item := range o.items {
		if !item.Status().IsTerminal() {
			allTerminal = false
			break
		}
	}
	if allTerminal {
		o.overallStatus = Rejected
	} else {
		o.overallStatus = Completed
	}

	o.updatedAt = time.Now().UTC()
	return RefundResult{
		RefundedAmount: amount,
		NewTotal:       o.totalAmount,
		NewStatus:      o.overallStatus,
	}, nil
}

// SetPaymentStatus records the payment status supplied by the payment
// collaborator.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	o.paymentStatus = status
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) allReadyOrRejected() bool {
	for _, item := range o.items {
		if item.Status() != ItemReady && item.Status() != ItemRejected {
			return false
		}
	}
	return true
}

func (o *Order) recomputeOverallStatus() {
	statuses := make([]ItemStatus, len(o.items))
	for i, item := range o.items {
		statuses[i] = item.Status()
	}
	o.overallStatus = DeriveOverallStatus(statuses)
	o.updatedAt = time.Now().UTC()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
