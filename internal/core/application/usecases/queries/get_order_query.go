// Package queries contains read-only operations for the order engine.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return dedicated response shapes, bypassing the
// domain aggregates and the unit of work.
package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail view of one order.
// Visibility is restricted to the order's parties: the buyer, the farmer,
// the assigned transporter, and admins. Anyone else gets a not-found answer,
// so the existence of an order is never leaked to outsiders.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, callerID, kernel.RoleBuyer)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	caller  kernel.UUID
	actor   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(orderID, caller kernel.UUID, actor kernel.Role) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := caller.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		caller:  caller,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Caller returns the identity of the requesting user.
func (q GetOrderQuery) Caller() kernel.UUID {
	return q.caller
}

// Actor returns the role of the requesting user.
func (q GetOrderQuery) Actor() kernel.Role {
	return q.actor
}

// OrderItemView is one line-item snapshot in the detail view.
type OrderItemView struct {
	ProductID    kernel.UUID
	ProductName  string
	ProductImage string
	UnitPrice    float64
	Unit         string
	Quantity     int
	QualityGrade string
	IsOrganic    bool
	HarvestDate  *time.Time
	LineTotal    float64
}

// GetOrderQueryResponse is the full order detail view.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	BuyerID       kernel.UUID
	FarmerID      kernel.UUID
	TransporterID *kernel.UUID
	VehicleID     *kernel.UUID

	Items []OrderItemView

	Street     string
	City       string
	Region     string
	PostalCode string

	SubTotal       float64
	TaxAmount      float64
	ShippingCost   float64
	DiscountAmount float64
	TotalAmount    float64

	Status          string
	ProgressPercent int

	PaymentStatus string
	PaymentMethod string
	PaymentID     *string
	PaidAt        *time.Time

	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	TrackingNumber    *string
	TrackingURL       *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}
