package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes; the events
// of tracked aggregates are published once Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the events
	// recorded by tracked aggregates.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and forgets tracked
	// aggregates. Returns error if no active transaction.
	Rollback(ctx context.Context) error

	MenuRepository() MenuRepository
	SizeTierRepository() SizeTierRepository
	PricingConfigRepository() PricingConfigRepository
	OrderRepository() OrderRepository
	PaymentRepository() PaymentRepository
}
