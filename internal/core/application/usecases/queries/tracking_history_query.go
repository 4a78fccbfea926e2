package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrTrackingHistoryQueryIsNotConstructed = errors.New(
		"TrackingHistoryQuery must be created via NewTrackingHistoryQuery constructor",
	)
)

// TrackingHistoryQuery retrieves the full audit ledger of one order.
// Visible to the order's parties and admins only; the public tracking page
// gets the reduced TrackOrderQuery instead.
type TrackingHistoryQuery struct {
	orderID kernel.UUID
	caller  kernel.UUID
	actor   kernel.Role

	guard guard.ConstructorGuard
}

// NewTrackingHistoryQuery creates a query for an order's tracking ledger.
func NewTrackingHistoryQuery(orderID, caller kernel.UUID, actor kernel.Role) (TrackingHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackingHistoryQuery{}, err
	}
	if err := caller.Validate(); err != nil {
		return TrackingHistoryQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return TrackingHistoryQuery{}, err
	}

	return TrackingHistoryQuery{
		orderID: orderID,
		caller:  caller,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrTrackingHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q TrackingHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Caller returns the identity of the requesting user.
func (q TrackingHistoryQuery) Caller() kernel.UUID {
	return q.caller
}

// Actor returns the role of the requesting user.
func (q TrackingHistoryQuery) Actor() kernel.Role {
	return q.actor
}

// TrackingEventView is one ledger entry in chronological order.
type TrackingEventView struct {
	ID          kernel.UUID
	Status      string
	Location    string
	Description string
	Notes       string
	CreatedAt   time.Time
}

// TrackingHistoryQueryResponse is the ordered ledger of one order.
type TrackingHistoryQueryResponse struct {
	OrderID kernel.UUID
	Events  []TrackingEventView
}
