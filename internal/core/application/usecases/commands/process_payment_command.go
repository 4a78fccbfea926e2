package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
)

// ProcessPaymentCommand represents a request to collect payment for an order
// through the payment gateway. Issued by the order's buyer or an admin.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.UUID
	actor   kernel.Role
	// details carries method-specific gateway fields (card token, wallet
	// reference). Opaque to the engine.
	details map[string]string

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a payment collection command.
// The caller identity is matched against the order's buyer in the handler;
// admins bypass that check.
func NewProcessPaymentCommand(
	orderID kernel.UUID,
	caller kernel.UUID,
	actor kernel.Role,
	details map[string]string,
) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setActor(actor),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	cmd.details = details

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the order to collect payment for.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the identity of the requesting user.
func (c ProcessPaymentCommand) Caller() kernel.UUID {
	return c.caller
}

// Actor returns the role of the caller.
func (c ProcessPaymentCommand) Actor() kernel.Role {
	return c.actor
}

// Details returns the method-specific gateway fields.
func (c ProcessPaymentCommand) Details() map[string]string {
	return c.details
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ProcessPaymentCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor != kernel.RoleBuyer && actor != kernel.RoleAdmin {
		return errs.NewUnauthorizedRoleError(actor.String(), "process payment")
	}
	c.actor = actor
	return nil
}
