package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// GetAllOrdersQuery retrieves the admin order listing, newest first. Orders can
// be filtered by overall status, payment status and ordering user, and are
// returned one page at a time.
type GetAllOrdersQuery struct {
	statusFilter  string
	paymentFilter string
	userFilter    string
	page          int
	pageSize      int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the admin order listing.
// Empty filters are skipped; non-empty ones must name a valid overall status,
// payment status, or user id. A zero page or pageSize falls back to the first
// page and the default page size.
func NewGetAllOrdersQuery(
	statusFilter string,
	paymentFilter string,
	userFilter string,
	page int,
	pageSize int,
) (GetAllOrdersQuery, error) {
	if statusFilter != "" {
		if _, err := order.StatusFromString(statusFilter); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if paymentFilter != "" {
		if _, err := order.PaymentStatusFromString(paymentFilter); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if userFilter != "" {
		if _, err := kernel.UUIDFromString(userFilter); err != nil {
			return GetAllOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("userId", err)
		}
	}

	if page == 0 {
		page = 1
	}
	if page < 1 {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}

	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return GetAllOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return GetAllOrdersQuery{
		statusFilter:  statusFilter,
		paymentFilter: paymentFilter,
		userFilter:    userFilter,
		page:          page,
		pageSize:      pageSize,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// StatusFilter returns the overall status filter, empty for no filter.
func (q GetAllOrdersQuery) StatusFilter() string {
	return q.statusFilter
}

// PaymentFilter returns the payment status filter, empty for no filter.
func (q GetAllOrdersQuery) PaymentFilter() string {
	return q.paymentFilter
}

// UserFilter returns the ordering user filter, empty for no filter.
func (q GetAllOrdersQuery) UserFilter() string {
	return q.userFilter
}

// Page returns the one-based page number.
func (q GetAllOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetAllOrdersQuery) PageSize() int {
	return q.pageSize
}

// GetAllOrdersQueryResponse is one row of the admin order listing.
type GetAllOrdersQueryResponse struct {
	ID               kernel.UUID
	UserID           kernel.UUID
	OverallStatus    string
	PaymentStatus    string
	RejectionMessage string
	TotalAmount      float64
	ItemCount        int
	ActiveItemCount  int
	CreatedAt        time.Time
}
