package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves aggregate fulfillment statistics: order and
// item counts per status and the average recorded preparation time. Backs
// both the admin dashboard and the periodic kitchen stats broadcast.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for fulfillment statistics.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds the aggregate counters.
// AvgPreparationSeconds is nil when no item has a recorded preparation time.
type GetOrderStatsQueryResponse struct {
	OrdersByStatus        map[string]int
	ItemsByStatus         map[string]int
	AvgPreparationSeconds *float64
}
