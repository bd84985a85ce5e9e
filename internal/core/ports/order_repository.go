package ports

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order (status and cancel
	// reason). The write is guarded by the version the order was loaded
	// with; a concurrent change surfaces as errs.VersionConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines. Returns ObjectNotFoundError
	// when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
