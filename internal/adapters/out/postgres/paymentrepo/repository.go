package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"lunchbox/internal/adapters/out/postgres/pgutil"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PaymentDTO{})
}

// Add saves a new payment at version 1. A second payment for the same order
// is rejected.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgutil.IsUniqueViolation(err, "") {
			return errs.NewValueIsInvalidErrorWithCause("payment",
				fmt.Errorf("order %s already has a payment", aggregate.OrderID()))
		}
		return err
	}
	aggregate.SetVersion(dto.Version)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable fields guarded by the loaded version.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := pgutil.VersionedUpdate(ctx, r.db, &PaymentDTO{}, "payment", dto.ID, aggregate.Version(),
		map[string]any{
			"amount":       dto.Amount,
			"method":       dto.Method,
			"status":       dto.Status,
			"reference":    dto.Reference,
			"note":         dto.Note,
			"pix_txid":     dto.PixTxID,
			"card_present": dto.CardPresent,
			"confirmed_at": dto.ConfirmedAt,
		}); err != nil {
		return err
	}
	aggregate.SetVersion(aggregate.Version() + 1)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
