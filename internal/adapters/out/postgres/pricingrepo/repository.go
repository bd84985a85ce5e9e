package pricingrepo

import (
	"context"
	"errors"

	"lunchbox/internal/adapters/out/postgres/pgutil"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingConfigRepository implements ports.PricingConfigRepository using
// GORM.
type GormPricingConfigRepository struct {
	db *gorm.DB
}

func NewGormPricingConfigRepository(db *gorm.DB) *GormPricingConfigRepository {
	return &GormPricingConfigRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfigDTO{})
}

// Get returns pricing.DefaultConfig while nothing is stored.
func (r *GormPricingConfigRepository) Get(ctx context.Context) (*pricing.Config, error) {
	var dto ConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.DefaultConfig(), nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts a never stored config at version 1 and otherwise updates the
// row guarded by the loaded version. Losing the race to insert first is a
// version conflict too.
func (r *GormPricingConfigRepository) Save(ctx context.Context, cfg *pricing.Config) error {
	dto := fromDomain(cfg)

	if !cfg.IsStored() {
		dto.Version = 1
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			if pgutil.IsUniqueViolation(err, "") {
				return errs.NewVersionConflictError("pricing config", singletonID, 0)
			}
			return err
		}
		cfg.SetVersion(dto.Version)
		return nil
	}

	if err := pgutil.VersionedUpdate(ctx, r.db, &ConfigDTO{}, "pricing config", singletonID, cfg.Version(),
		map[string]any{
			"strategy":           dto.Strategy,
			"included_mix_count": dto.IncludedMixCount,
			"extra_mix_price":    dto.ExtraMixPrice,
			"default_side_price": dto.DefaultSidePrice,
		}); err != nil {
		return err
	}
	cfg.SetVersion(cfg.Version() + 1)
	return nil
}
