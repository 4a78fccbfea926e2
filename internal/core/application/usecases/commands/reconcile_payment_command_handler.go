package commands

import (
	"context"
	"time"
)

// ReconcilePaymentCommandHandler applies a gateway-reported payment state to
// an order. Idempotent: replaying a webhook delivers the same end state, and
// the aggregate keeps the original paidAt on repeated paid updates.
type ReconcilePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReconcilePaymentCommandHandler creates a handler for payment reconciliation.
func NewReconcilePaymentCommandHandler(uowFactory OrderUoWFactory) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h ReconcilePaymentCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observed := aggregate.Status()

	if err = aggregate.UpdatePaymentStatus(cmd.PaymentStatus(), cmd.PaymentID(), time.Now().UTC()); err != nil {
		return err
	}

	// Conditional on the fulfillment status seen at read time, so a cancel
	// that committed after the read cannot be overwritten by this stale
	// snapshot.
	if err = orderRepo.UpdateConditional(ctx, aggregate, observed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
