package pricing

import (
	"errors"

	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/errs"
)

var ErrSizeRequired = errors.New("size is required by the pricing strategy")

// Plan is the pricing strategy bound to its inputs. The set of
// implementations is closed: PerItemPlan, FixedSizePlan, BasePlusAddonsPlan.
type Plan interface {
	Strategy() Strategy
	// Tier returns the size tier, or false for PER_ITEM.
	Tier() (menu.SizeTier, bool)

	isPlan()
}

type PerItemPlan struct{}

func (PerItemPlan) Strategy() Strategy {
	return PerItem
}

func (PerItemPlan) Tier() (menu.SizeTier, bool) {
	return menu.SizeTier{}, false
}

func (PerItemPlan) isPlan() {}

type FixedSizePlan struct {
	tier menu.SizeTier
}

func (FixedSizePlan) Strategy() Strategy {
	return FixedSize
}

func (p FixedSizePlan) Tier() (menu.SizeTier, bool) {
	return p.tier, true
}

func (FixedSizePlan) isPlan() {}

type BasePlusAddonsPlan struct {
	tier menu.SizeTier
}

func (BasePlusAddonsPlan) Strategy() Strategy {
	return BasePlusAddons
}

func (p BasePlusAddonsPlan) Tier() (menu.SizeTier, bool) {
	return p.tier, true
}

func (BasePlusAddonsPlan) isPlan() {}

// ResolvePlan binds the configured strategy to tier. tier is ignored under
// PER_ITEM and required otherwise. An unknown strategy is a configuration
// error, not the caller's fault.
func ResolvePlan(cfg *Config, tier *menu.SizeTier) (Plan, error) {
	switch cfg.Strategy() {
	case PerItem:
		return PerItemPlan{}, nil
	case FixedSize, BasePlusAddons:
		if tier == nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("size", ErrSizeRequired)
		}
		if err := tier.Validate(); err != nil {
			return nil, err
		}
		if cfg.Strategy() == FixedSize {
			return FixedSizePlan{tier: *tier}, nil
		}
		return BasePlusAddonsPlan{tier: *tier}, nil
	default:
		return nil, errs.NewConfigurationIsInvalidError("pricing strategy", cfg.Strategy())
	}
}
