package commands

import (
	"context"
	"fmt"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves each requested product against the catalog snapshot reader, builds
// immutable item snapshots with catalog-sourced prices, creates the order in
// pending status, and records the opening ledger entry, all in one
// transaction, so a catalog failure never leaves a half-created order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch {
//	    case errors.Is(err, errs.ErrUpstreamUnavailable):
//	        // catalog timed out; nothing was created, safe to retry
//	    case errors.Is(err, errs.ErrValueIsInvalid):
//	        // a product is unavailable or the request is malformed
//	    }
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.CatalogReader
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a CatalogReader
// for authoritative product prices.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, catalog ports.CatalogReader) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order placement command.
// All item snapshots must resolve to available products of a single farmer;
// the subtotal is computed from catalog prices, never client input.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	items, farmerID, err := h.snapshotItems(ctx, cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		farmerID,
		items,
		cmd.Address(),
		cmd.PaymentMethod(),
		cmd.TaxAmount(),
		cmd.ShippingCost(),
		cmd.DiscountAmount(),
		now,
	)
	if err != nil {
		return err
	}

	opening, err := order.NewTrackingEvent(
		kernel.NewUUID(),
		newOrder.ID(),
		newOrder.Status(),
		"",
		"order placed",
		"",
		now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.TrackingRepository().Append(ctx, opening); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// snapshotItems resolves every requested product to an immutable item
// snapshot and derives the selling farmer. All products must belong to the
// same farmer; a marketplace order never spans farms.
func (h CreateOrderCommandHandler) snapshotItems(
	ctx context.Context,
	requests []ItemRequest,
) ([]order.Item, kernel.UUID, error) {
	var farmerID kernel.UUID
	items := make([]order.Item, 0, len(requests))

	for _, request := range requests {
		snapshot, err := h.catalog.Snapshot(ctx, request.ProductID)
		if err != nil {
			return nil, kernel.UUID{}, err
		}
		if !snapshot.Available {
			return nil, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("product",
				fmt.Errorf("product %s is not available", request.ProductID))
		}

		if farmerID.Validate() != nil {
			farmerID = snapshot.FarmerID
		} else if !farmerID.IsEqual(snapshot.FarmerID) {
			return nil, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("products belong to different farmers"))
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			snapshot.ProductID,
			snapshot.Name,
			snapshot.ImageURL,
			snapshot.UnitPrice,
			snapshot.Unit,
			request.Quantity,
			snapshot.QualityGrade,
			snapshot.IsOrganic,
			snapshot.HarvestDate,
		)
		if err != nil {
			return nil, kernel.UUID{}, err
		}
		items = append(items, item)
	}

	return items, farmerID, nil
}
