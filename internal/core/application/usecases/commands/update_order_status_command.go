package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an actor's request to move an order to
// a new fulfillment status. Whether the move is legal is decided inside the
// aggregate by the TransitionAuthority, not here; the command only carries a
// well-formed request.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.StatusShipped,
//	    kernel.RoleFarmer, "left the farm", "Green Valley Farm")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrUnauthorizedRole):
//	    // wrong actor for this edge
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // wrong order state for this edge
//	case errors.Is(err, errs.ErrConflict):
//	    // lost a concurrent race; re-read and retry
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	newStatus      order.Status
	actor          kernel.Role
	notes          string
	location       string
	trackingNumber string
	trackingURL    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to request a status transition.
// Validates the order ID, the requested status, and the actor role.
// Notes and location are optional free-form ledger fields.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actor kernel.Role,
	notes string,
	location string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		notes:    notes,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// WithTrackingReference returns a copy of the command carrying a carrier
// tracking number and URL. Only honored on transitions to shipped; the
// aggregate rejects tracking references in other states.
func (c UpdateOrderStatusCommand) WithTrackingReference(number, url string) UpdateOrderStatusCommand {
	c.trackingNumber = number
	c.trackingURL = url
	return c
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested fulfillment status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns the role of the caller requesting the transition.
func (c UpdateOrderStatusCommand) Actor() kernel.Role {
	return c.actor
}

// Notes returns the optional free-form remarks for the ledger entry.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

// Location returns the optional location for the ledger entry.
func (c UpdateOrderStatusCommand) Location() string {
	return c.location
}

// TrackingNumber returns the optional carrier tracking number.
func (c UpdateOrderStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}

// TrackingURL returns the optional carrier tracking URL.
func (c UpdateOrderStatusCommand) TrackingURL() string {
	return c.trackingURL
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
