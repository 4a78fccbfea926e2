package commands

import (
	"context"

	"farmmarket/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation by delegating to the
// status transition flow with a requested status of cancelled. Keeping
// cancellation on the same path means it gets the same authority check,
// conditional write, and paired ledger append as every other transition.
type CancelOrderCommandHandler struct {
	updateStatus UpdateOrderStatusCommandHandler
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		updateStatus: NewUpdateOrderStatusCommandHandler(uowFactory),
	}
}

// Handle processes the cancellation command.
// A buyer cancelling a shipped order receives an UnauthorizedRoleError; any
// actor cancelling a finished order receives an AlreadyFinalizedError.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	transition, err := NewUpdateOrderStatusCommand(
		cmd.OrderID(),
		order.StatusCancelled,
		cmd.Actor(),
		cmd.Notes(),
		"",
	)
	if err != nil {
		return err
	}

	return h.updateStatus.Handle(ctx, transition)
}
