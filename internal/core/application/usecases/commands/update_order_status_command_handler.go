package commands

import (
	"context"
	"fmt"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler orchestrates a fulfillment status change.
//
// The optimistic concurrency discipline: read the order, let the aggregate
// (via the TransitionAuthority) validate the transition, then write with a
// conditional update keyed on the status that was observed at read time. If
// another writer moved the order in between, zero rows match and the caller
// receives a ConflictError instead of a silent overwrite. The ledger append
// lands in the same transaction as the status write, keeping the audit trail
// consistent with the order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory spanning the order repository and the tracking ledger.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Returns the TransitionAuthority's error unchanged when the transition is
// denied, and a ConflictError when a concurrent writer won the race.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	now := time.Now().UTC()

	if err = aggregate.ApplyStatus(cmd.NewStatus(), cmd.Actor(), now); err != nil {
		return err
	}

	if cmd.TrackingNumber() != "" {
		if err = aggregate.SetTrackingReference(cmd.TrackingNumber(), cmd.TrackingURL(), now); err != nil {
			return err
		}
	}

	if err = orderRepo.UpdateConditional(ctx, aggregate, observed); err != nil {
		return err
	}

	event, err := order.NewTrackingEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.Status(),
		cmd.Location(),
		fmt.Sprintf("status changed to %s by %s", aggregate.Status(), cmd.Actor()),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
