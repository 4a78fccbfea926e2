package queries

import (
	"errors"
	"time"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery is the public tracking lookup by order number.
// Anyone holding the order number may ask; the answer deliberately carries no
// party identifiers, no amounts, and no address beyond the city of the last
// tracking event.
type TrackOrderQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a public tracking query.
func NewTrackOrderQuery(orderNumber string) (TrackOrderQuery, error) {
	if orderNumber == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("order number")
	}

	return TrackOrderQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderNumber returns the public order number being tracked.
func (q TrackOrderQuery) OrderNumber() string {
	return q.orderNumber
}

// TrackOrderQueryResponse is the reduced tracking view for the public page.
type TrackOrderQueryResponse struct {
	OrderNumber       string
	Status            string
	ProgressPercent   int
	LastLocation      string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	TrackingNumber    *string
	TrackingURL       *string
}
