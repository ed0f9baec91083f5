package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves one customer's orders with their items, newest
// first. This backs the customer order history view.
type GetUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's order history.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the customer whose orders are requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// UserOrderItemResponse is one item line of a customer's order.
type UserOrderItemResponse struct {
	ID               kernel.UUID
	ProductName      string
	Price            float64
	Quantity         int
	Status           string
	RejectionMessage string
}

// GetUserOrdersQueryResponse is one of the customer's orders with its items in
// placement order.
type GetUserOrdersQueryResponse struct {
	ID               kernel.UUID
	OverallStatus    string
	PaymentStatus    string
	RejectionMessage string
	TotalAmount      float64
	CreatedAt        time.Time
	Items            []UserOrderItemResponse
}
