// Package order provides the domain model for canteen order fulfillment.
// It implements the Order aggregate root with its embedded items and the
// state machines governing their lifecycle.
//
// The package includes:
//   - Order: the aggregate root; customers cancel subsets of items, kitchen
//     staff advance or reject individual items, admins override the whole
//     order and process refunds
//   - OrderItem: child entity with an immutable catalog snapshot and an
//     item-level status machine (rejected and cancelled are absorbing)
//   - ItemStatus / Status / PaymentStatus: validated status value objects
//   - DeriveOverallStatus: the pure derivation of the aggregate status from
//     item statuses (all cancelled, none active, or least-advanced active)
//
// Key business rules:
//   - The item set is fixed at placement; afterwards only item fields mutate
//   - Terminal items never change again; attempts surface ErrItemTerminal
//   - The overall status is recomputed in the same transition that mutated
//     an item, except for explicit admin overrides
//   - The monetary total never goes negative; refunds floor it at zero
package order
