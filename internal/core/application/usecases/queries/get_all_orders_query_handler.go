package queries

import (
	"context"
	"strings"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the admin order listing from the database.
// Each row carries the active item count, which admins echo back as the
// concurrency token when overriding a status.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for admin listing queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing query, newest orders first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.user_id,
			o.overall_status,
			o.payment_status,
			o.rejection_message,
			o.total_amount,
			COUNT(i.id),
			COUNT(i.id) FILTER (WHERE i.status NOT IN (?, ?)),
			o.created_at
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
	`
	args := []any{order.ItemRejected.String(), order.ItemCancelled.String()}

	where := make([]string, 0, 3)
	if query.StatusFilter() != "" {
		where = append(where, "o.overall_status = ?")
		args = append(args, query.StatusFilter())
	}
	if query.PaymentFilter() != "" {
		where = append(where, "o.payment_status = ?")
		args = append(args, query.PaymentFilter())
	}
	if query.UserFilter() != "" {
		where = append(where, "o.user_id = ?")
		args = append(args, query.UserFilter())
	}
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}

	sql += `
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			orderID          uuid.UUID
			userID           uuid.UUID
			overallStatus    string
			paymentStatus    string
			rejectionMessage string
			totalAmount      float64
			itemCount        int
			activeItemCount  int
			createdAt        time.Time
		)

		err = rows.Scan(
			&orderID,
			&userID,
			&overallStatus,
			&paymentStatus,
			&rejectionMessage,
			&totalAmount,
			&itemCount,
			&activeItemCount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		uid, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetAllOrdersQueryResponse{
			ID:               oid,
			UserID:           uid,
			OverallStatus:    overallStatus,
			PaymentStatus:    paymentStatus,
			RejectionMessage: rejectionMessage,
			TotalAmount:      totalAmount,
			ItemCount:        itemCount,
			ActiveItemCount:  activeItemCount,
			CreatedAt:        createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
