package queries

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler reads the kitchen work board from the database.
// Closed orders (completed, cancelled, rejected) are excluded; the kitchen
// only sees orders it can still act on.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen board queries.
// Requires a GORM database connection for query execution.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first so the kitchen
// works the queue in arrival order; items keep their placement order.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]GetKitchenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.overall_status,
			o.total_amount,
			o.created_at,
			i.id,
			i.product_name,
			i.quantity,
			i.status,
			i.rejection_message
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE o.overall_status NOT IN (?, ?, ?)
		ORDER BY o.created_at, o.id, i.position
	`, order.Completed.String(), order.Cancelled.String(), order.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetKitchenOrdersQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			orderID          uuid.UUID
			overallStatus    string
			totalAmount      float64
			createdAt        time.Time
			itemID           uuid.UUID
			productName      string
			quantity         int
			itemStatus       string
			rejectionMessage string
		)

		err = rows.Scan(
			&orderID,
			&overallStatus,
			&totalAmount,
			&createdAt,
			&itemID,
			&productName,
			&quantity,
			&itemStatus,
			&rejectionMessage,
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
			orders = append(orders, GetKitchenOrdersQueryResponse{
				ID:            oid,
				OverallStatus: overallStatus,
				TotalAmount:   totalAmount,
				CreatedAt:     createdAt,
			})
			pos = len(orders) - 1
			index[oid] = pos
		}

		orders[pos].Items = append(orders[pos].Items, KitchenOrderItemResponse{
			ID:               iid,
			ProductName:      productName,
			Quantity:         quantity,
			Status:           itemStatus,
			RejectionMessage: rejectionMessage,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
