package queries

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrOrderSummaryQueryIsNotConstructed = errors.New(
		"OrderSummaryQuery must be created via NewOrderSummaryQuery constructor",
	)
)

// OrderSummaryQuery computes aggregate order statistics for a dashboard.
// Scoped the same way as the listing: each party sees the statistics of
// their own orders, admins see the whole marketplace.
type OrderSummaryQuery struct {
	caller kernel.UUID
	actor  kernel.Role

	guard guard.ConstructorGuard
}

// NewOrderSummaryQuery creates a dashboard statistics query.
func NewOrderSummaryQuery(caller kernel.UUID, actor kernel.Role) (OrderSummaryQuery, error) {
	if err := caller.Validate(); err != nil {
		return OrderSummaryQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return OrderSummaryQuery{}, err
	}

	return OrderSummaryQuery{
		caller: caller,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrOrderSummaryQueryIsNotConstructed)
}

// Caller returns the identity of the requesting user.
func (q OrderSummaryQuery) Caller() kernel.UUID {
	return q.caller
}

// Actor returns the role of the requesting user.
func (q OrderSummaryQuery) Actor() kernel.Role {
	return q.actor
}

// OrderSummaryQueryResponse holds the dashboard statistics.
// TotalRevenue and AverageOrderValue count delivered orders only; an empty
// scope yields zeros rather than a division error.
type OrderSummaryQueryResponse struct {
	TotalOrders       int64
	CountByStatus     map[string]int64
	TotalRevenue      float64
	AverageOrderValue float64
}
