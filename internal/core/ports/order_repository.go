// Package ports defines repository and collaborator interfaces for the order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing and retrieving orders together with their
// line-item snapshots.
type OrderRepository interface {
	// Add persists a new order aggregate and its items to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateConditional persists changes only if the stored fulfillment status
	// still equals observedStatus (an optimistic conditional write). When the
	// row was concurrently moved to a different status, no rows match and a
	// ConflictError is returned; the caller may re-read and retry. This is the
	// serialization discipline for every write to an existing order: payment
	// and assignment mutations carry the status observed at read time, so a
	// stale snapshot can never overwrite a concurrent transition.
	UpdateConditional(ctx context.Context, aggregate *order.Order, observedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its item snapshots.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its public order number.
	// This backs the unauthenticated tracking lookup; PII reduction happens
	// in the query layer, not here.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)
}

// TrackingRepository defines the persistence contract for the append-only
// tracking ledger. Events are never updated or deleted.
type TrackingRepository interface {
	// Append records one tracking event. Any successful fulfillment status
	// change must be paired with an Append in the same transaction, so the
	// ledger's final event always matches the order's current status.
	Append(ctx context.Context, event order.TrackingEvent) error

	// History returns all events for an order sorted by creation time
	// ascending. The sequence is the audit source of truth.
	History(ctx context.Context, orderID kernel.UUID) ([]order.TrackingEvent, error)
}
