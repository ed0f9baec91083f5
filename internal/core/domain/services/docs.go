// Package services provides domain services for canteen order fulfillment
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StaleViewGuard: optimistic-concurrency check protecting admin status
//     overrides from acting on a stale view of an order
package services
