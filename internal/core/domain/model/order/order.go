package order

import (
	"errors"
	"fmt"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when an order is created without line items.
	ErrNoItems = errors.New("order must contain at least one item")
)

// Order represents a marketplace purchase between a buyer and a farmer,
// possibly involving a transporter. It is the aggregate root that owns the
// line-item snapshots, the monetary fields, and both status axes, and manages
// the lifecycle from creation through payment, transport, and delivery (or
// cancellation).
//
// Order follows these invariants:
//   - totalAmount == subTotal + taxAmount + shippingCost − discountAmount, all non-negative
//   - subTotal is derived from the item snapshots, never supplied by a client
//   - items are immutable snapshots; catalog edits never alter a placed order
//   - fulfillment status moves only through TransitionAuthority-approved edges
//   - the payment axis is independent of fulfillment; paidAt is set once
//   - orderNumber is generated once at creation and never reissued
//   - terminal statuses (delivered, cancelled, refunded) permit no further
//     fulfillment transitions
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Mutating methods take the current time
// explicitly so handlers control the clock and tests stay deterministic.
type Order struct {
	id          kernel.UUID
	orderNumber string

	buyerID       kernel.UUID
	farmerID      kernel.UUID
	transporterID *kernel.UUID
	vehicleID     *kernel.UUID

	items []Item

	subTotal       kernel.Money
	taxAmount      kernel.Money
	shippingCost   kernel.Money
	discountAmount kernel.Money
	totalAmount    kernel.Money

	status        Status
	paymentStatus PaymentStatus
	paymentMethod PaymentMethod
	paymentID     *string
	paidAt        *time.Time

	shippingAddress   Address
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
	trackingNumber    *string
	trackingURL       *string

	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending fulfillment and pending payment
// status. This is the only way to create a valid new order.
//
// The item snapshots must already carry catalog-sourced unit prices; NewOrder
// derives subTotal and totalAmount from them and the supplied cost fields.
// The order number is generated here, once, combining a time-ordered component
// with a random suffix.
//
// Returns a ValueIsRequiredError/ValueIsInvalidError kind if any identifier,
// the address, or the payment method is invalid, ErrNoItems for an empty item
// set, and a ValueIsOutOfRangeError if the discount exceeds the gross amount.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	farmerID kernel.UUID,
	items []Item,
	shippingAddress Address,
	paymentMethod PaymentMethod,
	taxAmount kernel.Money,
	shippingCost kernel.Money,
	discountAmount kernel.Money,
	now time.Time,
) (*Order, error) {
	o := &Order{
		orderNumber:    NewOrderNumber(now),
		taxAmount:      taxAmount,
		shippingCost:   shippingCost,
		discountAmount: discountAmount,
		status:         StatusPending,
		paymentStatus:  PaymentPending,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setFarmerID(farmerID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if err := o.RecomputeTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It bypasses creation
// defaults (status, order number generation) but still validates identifiers
// and enum fields so corrupted rows are caught at the boundary.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	farmerID kernel.UUID,
	transporterID *kernel.UUID,
	vehicleID *kernel.UUID,
	items []Item,
	shippingAddress Address,
	paymentMethod PaymentMethod,
	taxAmount kernel.Money,
	shippingCost kernel.Money,
	discountAmount kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	paymentID *string,
	paidAt *time.Time,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
	trackingNumber *string,
	trackingURL *string,
	createdAt time.Time,
	updatedAt time.Time,
	cancelledAt *time.Time,
) (*Order, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}
	if transporterID != nil {
		if err := transporterID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		orderNumber:       orderNumber,
		transporterID:     transporterID,
		vehicleID:         vehicleID,
		taxAmount:         taxAmount,
		shippingCost:      shippingCost,
		discountAmount:    discountAmount,
		status:            status,
		paymentStatus:     paymentStatus,
		paymentID:         paymentID,
		paidAt:            paidAt,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
		trackingNumber:    trackingNumber,
		trackingURL:       trackingURL,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		cancelledAt:       cancelledAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setFarmerID(farmerID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if err := o.RecomputeTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable, globally unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// FarmerID returns the farmer's identifier.
func (o *Order) FarmerID() kernel.UUID {
	return o.farmerID
}

// TransporterID returns the assigned transporter's identifier, or nil if unassigned.
func (o *Order) TransporterID() *kernel.UUID {
	return o.transporterID
}

// VehicleID returns the assigned vehicle's identifier, or nil.
func (o *Order) VehicleID() *kernel.UUID {
	return o.vehicleID
}

// Items returns a copy of the order's line-item snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// SubTotal returns the sum of the line totals.
func (o *Order) SubTotal() kernel.Money {
	return o.subTotal
}

// TaxAmount returns the tax charged on the order.
func (o *Order) TaxAmount() kernel.Money {
	return o.taxAmount
}

// ShippingCost returns the shipping cost charged on the order.
func (o *Order) ShippingCost() kernel.Money {
	return o.shippingCost
}

// DiscountAmount returns the discount applied to the order.
func (o *Order) DiscountAmount() kernel.Money {
	return o.discountAmount
}

// TotalAmount returns the derived total:
// subTotal + taxAmount + shippingCost − discountAmount.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method chosen at creation.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentID returns the gateway's payment reference, or nil.
func (o *Order) PaymentID() *string {
	return o.paymentID
}

// PaidAt returns when the order was first marked paid, or nil.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// ShippingAddress returns the destination address.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// EstimatedDelivery returns the expected delivery time, or nil.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// ActualDelivery returns when the order was delivered, or nil.
func (o *Order) ActualDelivery() *time.Time {
	return o.actualDelivery
}

// TrackingNumber returns the carrier tracking number, or nil.
func (o *Order) TrackingNumber() *string {
	return o.trackingNumber
}

// TrackingURL returns the carrier tracking URL, or nil.
func (o *Order) TrackingURL() *string {
	return o.trackingURL
}

// CreatedAt returns the creation timestamp. Immutable.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// RecomputeTotal re-derives subTotal from the item snapshots and totalAmount
// from the cost fields. It is idempotent: calling it repeatedly without
// changing the inputs leaves the totals unchanged.
//
// Returns a ValueIsOutOfRangeError if the discount exceeds
// subTotal + taxAmount + shippingCost.
func (o *Order) RecomputeTotal() error {
	subTotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subTotal = subTotal.Add(item.LineTotal())
	}

	gross := subTotal.Add(o.taxAmount).Add(o.shippingCost)
	total, err := gross.Sub(o.discountAmount)
	if err != nil {
		return err
	}

	o.subTotal = subTotal
	o.totalAmount = total
	return nil
}

// ApplyStatus requests a fulfillment status transition on behalf of an actor.
// The decision is delegated to the TransitionAuthority; on approval the status
// is mutated and updatedAt stamped.
//
// Side effects on approval:
//   - newStatus == StatusCancelled stamps cancelledAt (set once)
//   - newStatus == StatusDelivered stamps actualDelivery only if not already
//     set, so a repeated delivery report cannot overwrite the first timestamp
//
// Returns the authority's error unchanged on denial; the order is not mutated.
func (o *Order) ApplyStatus(newStatus Status, actor kernel.Role, now time.Time) error {
	if err := NewTransitionAuthority().Decide(o.status, newStatus, actor); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now

	switch newStatus {
	case StatusCancelled:
		if o.cancelledAt == nil {
			cancelledAt := now
			o.cancelledAt = &cancelledAt
		}
	case StatusDelivered:
		if o.actualDelivery == nil {
			deliveredAt := now
			o.actualDelivery = &deliveredAt
		}
	default:
	}

	return nil
}

// AssignTransporter assigns a transporter (and optionally a vehicle) to the
// order and overwrites the estimated delivery time. Assignment is permitted
// only while the order is confirmed or processing; afterwards the physical
// hand-off has happened and the assignment is fixed.
func (o *Order) AssignTransporter(
	transporterID kernel.UUID,
	vehicleID *kernel.UUID,
	estimatedDelivery time.Time,
	now time.Time,
) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}

	if o.status.IsTerminal() {
		return errs.NewAlreadyFinalizedError(o.status.String())
	}
	if o.status != StatusConfirmed && o.status != StatusProcessing {
		return errs.NewInvalidTransitionError(o.status.String(), "transporter assignment")
	}

	o.transporterID = &transporterID
	o.vehicleID = vehicleID
	o.estimatedDelivery = &estimatedDelivery
	o.updatedAt = now
	return nil
}

// SetTrackingReference records the carrier tracking number and URL.
// Permitted once the order has shipped and until it reaches a terminal status.
func (o *Order) SetTrackingReference(trackingNumber, trackingURL string, now time.Time) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if o.status != StatusShipped && o.status != StatusInTransit {
		return errs.NewInvalidTransitionError(o.status.String(), "tracking reference")
	}

	o.trackingNumber = &trackingNumber
	if trackingURL != "" {
		o.trackingURL = &trackingURL
	}
	o.updatedAt = now
	return nil
}

// UpdatePaymentStatus moves the payment axis independently of fulfillment.
//
// On a transition to PaymentPaid, paidAt is stamped exactly once; a repeated
// paid update succeeds without overwriting the original timestamp. Marking a
// cancelled order as freshly paid is rejected with an AlreadyFinalizedError;
// the money must not be taken for an order that will never ship.
func (o *Order) UpdatePaymentStatus(newStatus PaymentStatus, paymentID *string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if o.status == StatusCancelled && newStatus == PaymentPaid {
		return errs.NewAlreadyFinalizedError(o.status.String())
	}

	o.paymentStatus = newStatus
	if paymentID != nil {
		o.paymentID = paymentID
	}
	if newStatus == PaymentPaid && o.paidAt == nil {
		paidAt := now
		o.paidAt = &paidAt
	}
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return fmt.Errorf("farmer: %w", err)
	}
	o.farmerID = farmerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
