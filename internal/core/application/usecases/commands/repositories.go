// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"farmmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure that a fulfillment status change and its tracking
// ledger append commit or roll back as one atomic unit.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking ledger within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that move the payment axis or assignment fields
	// without writing a ledger entry.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning the order aggregate and its ledger.
	// Every fulfillment status change goes through this one so the paired
	// ledger append lands in the same transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// UoWFactory creates new unit of work instances for order+ledger operations.
	UoWFactory interface {
		Create() UoW
	}
)
