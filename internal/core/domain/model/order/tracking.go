package order

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created through the NewTrackingEvent factory method.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent constructor",
)

// TrackingEvent is one entry in an order's append-only tracking ledger.
// Events are immutable once recorded: the ledger never updates or deletes
// prior events, and the sequence ordered by CreatedAt is the audit source of
// truth for the order's status history. Its final event always matches the
// Order's current status because the two are committed in the same transaction.
type TrackingEvent struct {
	// id is the unique identifier for the event
	id kernel.UUID

	// orderID is the order this event belongs to
	orderID kernel.UUID

	// status is the order's fulfillment status at the time of the event
	status Status

	// location is where the order was when the event was recorded
	location string

	// description is a human-readable account of what happened
	description string

	// notes carries optional free-form remarks from the acting party
	notes string

	// createdAt orders the ledger; never mutated
	createdAt time.Time

	// isConstructed ensures the event was created via NewTrackingEvent
	isConstructed bool
}

// NewTrackingEvent creates a ledger entry for an order status change.
func NewTrackingEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	location string,
	description string,
	notes string,
	createdAt time.Time,
) (TrackingEvent, error) {
	event := TrackingEvent{
		location:      location,
		description:   description,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		event.setID(id),
		event.setOrderID(orderID),
		event.setStatus(status),
	); err != nil {
		return TrackingEvent{}, err
	}

	return event, nil
}

// Validate ensures the event was created via NewTrackingEvent.
func (e TrackingEvent) Validate() error {
	if !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e TrackingEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the event belongs to.
func (e TrackingEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the fulfillment status at the time of the event.
func (e TrackingEvent) Status() Status {
	return e.status
}

// Location returns where the order was when the event was recorded.
func (e TrackingEvent) Location() string {
	return e.location
}

// Description returns the human-readable account of the event.
func (e TrackingEvent) Description() string {
	return e.description
}

// Notes returns the optional free-form remarks.
func (e TrackingEvent) Notes() string {
	return e.notes
}

// CreatedAt returns the event timestamp.
func (e TrackingEvent) CreatedAt() time.Time {
	return e.createdAt
}

func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *TrackingEvent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
