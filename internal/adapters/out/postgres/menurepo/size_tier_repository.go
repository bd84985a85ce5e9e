package menurepo

import (
	"context"
	"fmt"

	"lunchbox/internal/adapters/out/postgres/pgutil"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSizeTierRepository implements ports.SizeTierRepository using GORM.
type GormSizeTierRepository struct {
	db *gorm.DB
}

func NewGormSizeTierRepository(db *gorm.DB) *GormSizeTierRepository {
	return &GormSizeTierRepository{db: db}
}

// Add saves a new tier. Tier names are unique case-insensitively.
func (r *GormSizeTierRepository) Add(ctx context.Context, tier menu.SizeTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	dto := tierFromDomain(tier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgutil.IsUniqueViolation(err, TierNameIndex) {
			return errs.NewValueIsInvalidErrorWithCause("size tier name",
				fmt.Errorf("%w: %q", menu.ErrDuplicateName, tier.Name()))
		}
		return err
	}
	return nil
}

// GetAll returns the tiers from the cheapest up.
func (r *GormSizeTierRepository) GetAll(ctx context.Context) ([]menu.SizeTier, error) {
	var dtos []SizeTierDTO
	if err := r.db.WithContext(ctx).Order("base_price").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tiers := make([]menu.SizeTier, 0, len(dtos))
	for _, dto := range dtos {
		t, err := tierToDomain(dto)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}
