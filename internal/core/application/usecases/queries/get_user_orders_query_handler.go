package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a customer's order history from the database.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first; items keep their
// placement order.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.overall_status,
			o.payment_status,
			o.rejection_message,
			o.total_amount,
			o.created_at,
			i.id,
			i.product_name,
			i.price,
			i.quantity,
			i.status,
			i.rejection_message
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id, i.position
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUserOrdersQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			orderID               uuid.UUID
			overallStatus         string
			paymentStatus         string
			orderRejectionMessage string
			totalAmount           float64
			createdAt             time.Time
			itemID                uuid.UUID
			productName           string
			price                 float64
			quantity              int
			itemStatus            string
			itemRejectionMessage  string
		)

		err = rows.Scan(
			&orderID,
			&overallStatus,
			&paymentStatus,
			&orderRejectionMessage,
			&totalAmount,
			&createdAt,
			&itemID,
			&productName,
			&price,
			&quantity,
			&itemStatus,
			&itemRejectionMessage,
		)
		if err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		iid, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, ok := index[oid]
		if !ok {
			orders = append(orders, GetUserOrdersQueryResponse{
				ID:               oid,
				OverallStatus:    overallStatus,
				PaymentStatus:    paymentStatus,
				RejectionMessage: orderRejectionMessage,
				TotalAmount:      totalAmount,
				CreatedAt:        createdAt,
			})
			pos = len(orders) - 1
			index[oid] = pos
		}

		orders[pos].Items = append(orders[pos].Items, UserOrderItemResponse{
			ID:               iid,
			ProductName:      productName,
			Price:            price,
			Quantity:         quantity,
			Status:           itemStatus,
			RejectionMessage: itemRejectionMessage,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
