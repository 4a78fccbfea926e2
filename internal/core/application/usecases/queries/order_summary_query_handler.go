package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderSummaryQueryHandler computes aggregate order statistics in the
// database. One grouped scan covers the per-status counts, the total revenue
// over the scoped set, and the average order value.
type OrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewOrderSummaryQueryHandler creates a handler for dashboard statistics.
func NewOrderSummaryQueryHandler(db *gorm.DB) OrderSummaryQueryHandler {
	return OrderSummaryQueryHandler{db: db}
}

// Handle executes the statistics query.
func (h OrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query OrderSummaryQuery,
) (OrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderSummaryQueryResponse{}, err
	}

	scope, args := partyScope(query.Caller(), query.Actor())

	var rows []struct {
		Status  string
		Count   int64
		Revenue float64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE 1 = 1`+scope+`
		GROUP BY status
	`, args...).Scan(&rows).Error
	if err != nil {
		return OrderSummaryQueryResponse{}, err
	}

	response := OrderSummaryQueryResponse{
		CountByStatus: make(map[string]int64, len(rows)),
	}

	for _, row := range rows {
		response.CountByStatus[row.Status] = row.Count
		response.TotalOrders += row.Count
		response.TotalRevenue += row.Revenue
	}

	if response.TotalOrders > 0 {
		response.AverageOrderValue = response.TotalRevenue / float64(response.TotalOrders)
	}

	return response, nil
}
