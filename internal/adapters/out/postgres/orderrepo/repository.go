package orderrepo

import (
	"context"
	"errors"

	"lunchbox/internal/adapters/out/postgres/pgutil"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &OrderLineDTO{})
}

// Add saves a new order and its lines at version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	aggregate.SetVersion(dto.Version)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and cancel reason, guarded by the loaded version.
// Lines and total never change after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := pgutil.VersionedUpdate(ctx, r.db, &OrderDTO{}, "order", aggregate.ID().Bytes(), aggregate.Version(),
		map[string]any{
			"status":        aggregate.Status().String(),
			"cancel_reason": aggregate.CancelReason(),
		}); err != nil {
		return err
	}
	aggregate.SetVersion(aggregate.Version() + 1)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines in position order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
