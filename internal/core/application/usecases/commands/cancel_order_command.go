package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an order. Cancellation is
// a status transition to cancelled; whether the actor may cancel from the
// order's current state is decided by the TransitionAuthority (buyers lose
// the right once the order ships, farmers and admins keep it until delivery).
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Role
	notes   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates the order ID and the actor role; notes are optional.
func NewCancelOrderCommand(orderID kernel.UUID, actor kernel.Role, notes string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the role of the caller requesting cancellation.
func (c CancelOrderCommand) Actor() kernel.Role {
	return c.actor
}

// Notes returns the optional cancellation remarks for the ledger entry.
func (c CancelOrderCommand) Notes() string {
	return c.notes
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
