package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes fulfillment statistics in the database.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the statistics query. Three grouped scans: orders per
// status, items per status, average preparation time over items that have one.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{
		OrdersByStatus: make(map[string]int),
		ItemsByStatus:  make(map[string]int),
	}

	if err := h.countByStatus(ctx,
		`SELECT overall_status, COUNT(*) FROM orders GROUP BY overall_status`,
		resp.OrdersByStatus); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	if err := h.countByStatus(ctx,
		`SELECT status, COUNT(*) FROM order_items GROUP BY status`,
		resp.ItemsByStatus); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var avg *float64
	err := h.db.WithContext(ctx).Raw(`
		SELECT AVG(preparation_time)
		FROM order_items
		WHERE preparation_time IS NOT NULL
	`).Scan(&avg).Error
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	resp.AvgPreparationSeconds = avg

	return resp, nil
}

func (h GetOrderStatsQueryHandler) countByStatus(
	ctx context.Context, sql string, out map[string]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}
		out[status] = count
	}
	return rows.Err()
}
