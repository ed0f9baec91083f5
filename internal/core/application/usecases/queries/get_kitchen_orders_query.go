// Package queries contains read-only operations for order views.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structures, bypassing the
// domain model entirely.
package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
)

// GetKitchenOrdersQuery retrieves all orders the kitchen still has work on,
// with their items, oldest first. This backs the kitchen board.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query for the kitchen work board.
// This is a parameterless query that fetches all orders in an open status.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}

// KitchenOrderItemResponse is one item line on the kitchen board.
type KitchenOrderItemResponse struct {
	ID               kernel.UUID
	ProductName      string
	Quantity         int
	Status           string
	RejectionMessage string
}

// GetKitchenOrdersQueryResponse is one order on the kitchen board with its
// items in placement order.
type GetKitchenOrdersQueryResponse struct {
	ID            kernel.UUID
	OverallStatus string
	TotalAmount   float64
	CreatedAt     time.Time
	Items         []KitchenOrderItemResponse
}
