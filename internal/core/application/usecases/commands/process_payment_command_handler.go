package commands

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

// ProcessPaymentCommandHandler collects payment for an order through the
// payment gateway.
//
// The gateway call happens outside the database transaction: a charge is an
// external side effect that cannot be rolled back, so the handler charges
// first and persists the result after. If the gateway times out the order is
// left untouched and the caller gets an UpstreamUnavailableError; the request
// is safe to retry because the gateway deduplicates on order number.
type ProcessPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewProcessPaymentCommandHandler creates a handler for payment collection.
func NewProcessPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the payment command. Only the order's buyer or an admin may
// trigger collection; cash-on-delivery orders never reach the gateway.
func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
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

	if cmd.Actor() != kernel.RoleAdmin && !aggregate.BuyerID().IsEqual(cmd.Caller()) {
		return errs.NewUnauthorizedRoleError(cmd.Actor().String(), "process payment for another buyer's order")
	}

	if !aggregate.PaymentMethod().UsesGateway() {
		return errs.NewValueIsInvalidError("payment method")
	}

	if aggregate.PaymentStatus() == order.PaymentPaid {
		return errs.NewAlreadyFinalizedError(aggregate.PaymentStatus().String())
	}

	result, err := h.gateway.Charge(ctx, ports.ChargeRequest{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		Amount:      aggregate.TotalAmount(),
		Method:      aggregate.PaymentMethod(),
		Details:     cmd.Details(),
	})
	if err != nil {
		return err
	}

	observed := aggregate.Status()

	paymentID := result.PaymentID
	if err = aggregate.UpdatePaymentStatus(result.Status, &paymentID, time.Now().UTC()); err != nil {
		return err
	}

	// Conditional on the fulfillment status seen at read time: if a cancel
	// committed in between, the write matches zero rows instead of reviving
	// the pre-cancel snapshot.
	if err = orderRepo.UpdateConditional(ctx, aggregate, observed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
