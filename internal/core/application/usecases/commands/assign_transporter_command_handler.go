package commands

import (
	"context"
	"time"
)

// AssignTransporterCommandHandler orchestrates transporter assignment.
//
// Assignment races cancellation: a buyer can cancel a confirmed order while
// the farmer is handing it to a transporter. The conditional update keyed on
// the observed status turns that race into a ConflictError for the loser.
// Assignment does not change the fulfillment status, so no ledger entry is
// written.
type AssignTransporterCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignTransporterCommandHandler creates a handler for transporter assignment.
func NewAssignTransporterCommandHandler(uowFactory OrderUoWFactory) AssignTransporterCommandHandler {
	return AssignTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignTransporterCommandHandler) Handle(ctx context.Context, cmd AssignTransporterCommand) error {
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

	if err = aggregate.AssignTransporter(
		cmd.TransporterID(),
		cmd.VehicleID(),
		cmd.EstimatedDelivery(),
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = orderRepo.UpdateConditional(ctx, aggregate, observed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
