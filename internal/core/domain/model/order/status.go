package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// ItemStatus represents the lifecycle state of a single order item.
//
// State transitions:
//
//	pending ──┬──> preparing ──> ready
//	          │        │           │
//	          │        │           │ (admin/refund only)
//	          └────────┴───────────┴──> rejected | cancelled
//
// rejected and cancelled are absorbing: once an item reaches either,
// no further status mutation is permitted.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemPending is the initial status of every item at order placement.
	ItemPending

	// ItemPreparing indicates kitchen staff started working on the item.
	ItemPreparing

	// ItemReady indicates preparation of the item is finished.
	ItemReady

	// ItemRejected indicates kitchen staff rejected the item. Terminal.
	ItemRejected

	// ItemCancelled indicates the customer cancelled the item. Terminal.
	ItemCancelled
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "unknown",
		ItemPending:       "pending",
		ItemPreparing:     "preparing",
		ItemReady:         "ready",
		ItemRejected:      "rejected",
		ItemCancelled:     "cancelled",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ItemPending:   "pending",
		ItemPreparing: "preparing",
		ItemReady:     "ready",
		ItemRejected:  "rejected",
		ItemCancelled: "cancelled",
	}
}

// ItemStatusFromString parses an item status from its wire representation.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getValidItemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status", fmt.Errorf("%q is not a valid item status", s))
}

// Validate checks that the ItemStatus value is one of the defined statuses.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is absorbing (rejected or cancelled).
func (s ItemStatus) IsTerminal() bool {
	return s == ItemRejected || s == ItemCancelled
}

// IsActive reports whether the item still counts toward the order's active set.
func (s ItemStatus) IsActive() bool {
	return s == ItemPending || s == ItemPreparing || s == ItemReady
}

// CanTransitionTo reports whether the transition graph permits moving from
// the current status to target. Transitions to the same active status are
// permitted so repeated staff actions stay idempotent.
func (s ItemStatus) CanTransitionTo(target ItemStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if s == target {
		return s.IsActive()
	}

	switch s {
	case ItemPending:
		return target == ItemPreparing || target == ItemReady ||
			target == ItemRejected || target == ItemCancelled
	case ItemPreparing:
		return target == ItemReady || target == ItemRejected || target == ItemCancelled
	case ItemReady:
		return target == ItemRejected || target == ItemCancelled
	default:
		return false
	}
}

// priority orders active statuses by how far preparation has advanced.
// Derivation picks the least-advanced active item.
func (s ItemStatus) priority() int {
	switch s {
	case ItemPending:
		return 1
	case ItemPreparing:
		return 2
	case ItemReady:
		return 3
	default:
		return 0
	}
}

// Status represents the aggregate state of a whole order. Outside of admin
// overrides it is always a pure function of the item statuses, recomputed by
// DeriveOverallStatus within the same transition that mutated an item.
type Status int

const (
	// StatusUnknown represents an invalid or undefined order status.
	StatusUnknown Status = iota

	// Pending indicates at least one item has not been started yet.
	Pending

	// Preparing indicates the least-advanced active item is being prepared.
	Preparing

	// Ready indicates every active item is ready for pickup.
	Ready

	// Cancelled indicates every item was cancelled by the customer.
	Cancelled

	// Rejected indicates no active items remain but not all were cancelled,
	// or an admin rejected the whole order.
	Rejected

	// Completed is set only by admin or refund processing, never derived.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Preparing:     "preparing",
		Ready:         "ready",
		Cancelled:     "cancelled",
		Rejected:      "rejected",
		Completed:     "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Cancelled: "cancelled",
		Rejected:  "rejected",
		Completed: "completed",
	}
}

// StatusFromString parses an order status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsClosed reports whether the order accepts no further customer mutation.
func (s Status) IsClosed() bool {
	return s == Completed || s == Cancelled || s == Rejected
}

// DeriveOverallStatus computes the aggregate order status from a sequence of
// item statuses. It is a pure function:
//
//  1. every item cancelled -> Cancelled
//  2. no active items left (mix of cancelled/rejected) -> Rejected
//  3. otherwise the status of the least-advanced active item, first match in
//     sequence order breaking ties. The order is only as done as its
//     least-advanced active item.
func DeriveOverallStatus(statuses []ItemStatus) Status {
	allCancelled := true
	for _, s := range statuses {
		if s != ItemCancelled {
			allCancelled = false
			break
		}
	}
	if allCancelled {
		return Cancelled
	}

	lowest := ItemStatusUnknown
	for _, s := range statuses {
		if !s.IsActive() {
			continue
		}
		if lowest == ItemStatusUnknown || s.priority() < lowest.priority() {
			lowest = s
		}
	}
	if lowest == ItemStatusUnknown {
		return Rejected
	}

	switch lowest {
	case ItemPending:
		return Pending
	case ItemPreparing:
		return Preparing
	default:
		return Ready
	}
}
