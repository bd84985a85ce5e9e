// Package pricingrepo persists the single live pricing configuration.
package pricingrepo

import (
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// singletonID is the primary key of the only row of pricing_config.
const singletonID = 1

// ConfigDTO is the row of pricing_config. Strategy is stored verbatim so an
// unknown value surfaces as a configuration error when an order is priced.
type ConfigDTO struct {
	ID               int16            `gorm:"primaryKey;autoIncrement:false;check:id = 1"`
	Strategy         string           `gorm:"type:varchar(32);not null"`
	IncludedMixCount int              `gorm:"not null"`
	ExtraMixPrice    decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	DefaultSidePrice *decimal.Decimal `gorm:"type:numeric(10,2)"`
	Version          int              `gorm:"not null"`
}

func (ConfigDTO) TableName() string {
	return "pricing_config"
}

func fromDomain(cfg *pricing.Config) ConfigDTO {
	dto := ConfigDTO{
		ID:               singletonID,
		Strategy:         cfg.Strategy().String(),
		IncludedMixCount: cfg.IncludedMixCount(),
		ExtraMixPrice:    cfg.ExtraMixPrice().Decimal(),
		Version:          cfg.Version(),
	}
	if side := cfg.DefaultSidePrice(); side != nil {
		d := side.Decimal()
		dto.DefaultSidePrice = &d
	}
	return dto
}

func toDomain(dto ConfigDTO) (*pricing.Config, error) {
	extra, err := kernel.NewMoney(dto.ExtraMixPrice)
	if err != nil {
		return nil, err
	}

	var side *kernel.Money
	if dto.DefaultSidePrice != nil {
		m, sideErr := kernel.NewMoney(*dto.DefaultSidePrice)
		if sideErr != nil {
			return nil, sideErr
		}
		side = &m
	}

	return pricing.RestoreConfig(pricing.Strategy(dto.Strategy), dto.IncludedMixCount, extra, side, dto.Version)
}
