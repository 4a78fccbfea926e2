package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrReconcilePaymentCommandIsNotConstructed = errors.New(
		"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
	)
)

// ReconcilePaymentCommand applies a payment state reported by the gateway to
// an order. Fed by the gateway webhook and by the reconciliation job; only
// the gateway and admins may move the payment axis this way.
type ReconcilePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus
	paymentID     *string
	actor         kernel.Role

	guard guard.ConstructorGuard
}

// NewReconcilePaymentCommand creates a payment reconciliation command.
func NewReconcilePaymentCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
	paymentID *string,
	actor kernel.Role,
) (ReconcilePaymentCommand, error) {
	cmd := ReconcilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentStatus(paymentStatus),
		cmd.setActor(actor),
	); err != nil {
		return ReconcilePaymentCommand{}, err
	}

	cmd.paymentID = paymentID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment state is being reconciled.
func (c ReconcilePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the payment state reported by the gateway.
func (c ReconcilePaymentCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// PaymentID returns the gateway payment reference, or nil when unchanged.
func (c ReconcilePaymentCommand) PaymentID() *string {
	return c.paymentID
}

// Actor returns the role of the caller.
func (c ReconcilePaymentCommand) Actor() kernel.Role {
	return c.actor
}

func (c *ReconcilePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReconcilePaymentCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	c.paymentStatus = paymentStatus
	return nil
}

func (c *ReconcilePaymentCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor != kernel.RoleGateway && actor != kernel.RoleAdmin {
		return errs.NewUnauthorizedRoleError(actor.String(), "reconcile payment")
	}
	c.actor = actor
	return nil
}
