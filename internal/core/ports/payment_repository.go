package ports

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments. An order
// has at most one payment.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update is guarded by the version the payment was loaded with.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrder returns the payment of an order, or ObjectNotFoundError.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
