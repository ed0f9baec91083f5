package services

import (
	"fmt"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// StaleViewGuard is a domain service protecting admin status overrides from
// lost updates. An override bypasses status derivation entirely, so it must
// only be applied to the order the admin was actually looking at.
//
// The guard compares the active item count the caller observed against the
// aggregate's current count. Every customer cancellation and every staff
// rejection changes that count, so a mismatch means the order moved underneath
// the admin's view.
//
// Example usage:
//
//	guard := services.NewStaleViewGuard()
//	if err := guard.Check(ord, cmd.ActiveItemCount()); err != nil {
//	    // the admin saw a stale order, surface a conflict
//	    return err
//	}
//	err = ord.OverrideStatus(cmd.NewStatus(), cmd.RejectionMessage())
type StaleViewGuard struct{}

// NewStaleViewGuard creates a new StaleViewGuard instance.
func NewStaleViewGuard() StaleViewGuard {
	return StaleViewGuard{}
}

// Check verifies that the caller's observed active item count matches the
// order's current one. Returns a conflict error when the counts differ; the
// caller must reload the order and decide again.
func (g StaleViewGuard) Check(ord *order.Order, observedActiveCount int) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if observedActiveCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"observedActiveCount", fmt.Errorf("%d is negative", observedActiveCount))
	}

	current := ord.ActiveItemCount()
	if observedActiveCount != current {
		return errs.NewConflictErrorWithCause("activeItems",
			fmt.Errorf("order has %d active items, caller observed %d", current, observedActiveCount))
	}
	return nil
}
