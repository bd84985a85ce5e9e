package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/pkg/errs"
)

// ErrInactiveItem is wrapped when an inactive item is priced or ordered.
var ErrInactiveItem = errors.New("inactive item")

// PricingEngine computes the subtotal of aggregated lines under a plan.
//
// Formulas, where mix and side are quantity sums over MIX and SIDE items:
//
//	PER_ITEM          Σ unitPrice × qty
//	FIXED_SIZE        base + extraMix × max(0, mix − includedMixCount) + defaultSide × side
//	BASE_PLUS_ADDONS  base + extraMix × max(0, mix − 1) + defaultSide × side
//
// The side term is added only when a default side price is configured.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price returns the breakdown of lines. Lines in the breakdown are sorted by
// item name, ties broken by item id, so equal inputs give equal outputs.
func (e PricingEngine) Price(lines []pricing.Line, cfg *pricing.Config, plan pricing.Plan) (pricing.Breakdown, error) {
	if cfg == nil {
		return pricing.Breakdown{}, errs.NewValueIsRequiredError("pricing config")
	}
	if plan == nil {
		return pricing.Breakdown{}, errs.NewValueIsRequiredError("pricing plan")
	}
	if plan.Strategy() != cfg.Strategy() {
		return pricing.Breakdown{}, errs.NewConfigurationIsInvalidErrorWithCause("pricing plan", plan.Strategy(),
			fmt.Errorf("config strategy is %s", cfg.Strategy()))
	}
	if err := validateLines(lines); err != nil {
		return pricing.Breakdown{}, err
	}

	b := pricing.Breakdown{
		Lines:    make([]pricing.BreakdownLine, 0, len(lines)),
		Strategy: plan.Strategy(),
	}
	for _, l := range lines {
		switch l.Item.Category() {
		case menu.Mix:
			b.MixCount += l.Quantity
		case menu.Side:
			b.SideCount += l.Quantity
		case menu.Base, menu.UnknownCategory:
		}

		b.Lines = append(b.Lines, pricing.BreakdownLine{
			ItemID:    l.Item.ID(),
			Name:      l.Item.Name(),
			Category:  l.Item.Category(),
			UnitPrice: l.Item.Price(),
			Quantity:  l.Quantity,
			Total:     l.Item.Price().Times(l.Quantity),
		})
	}
	slices.SortFunc(b.Lines, compareBreakdownLines)

	switch p := plan.(type) {
	case pricing.PerItemPlan:
		subtotal := kernel.ZeroMoney()
		for _, l := range b.Lines {
			subtotal = subtotal.Add(l.Total)
		}
		b.Subtotal = subtotal
	case pricing.FixedSizePlan:
		tier, _ := p.Tier()
		b.Subtotal = sizedSubtotal(tier, cfg, cfg.IncludedMixCount(), b.MixCount, b.SideCount)
		b.SizeName = tierName(tier)
	case pricing.BasePlusAddonsPlan:
		tier, _ := p.Tier()
		b.Subtotal = sizedSubtotal(tier, cfg, 1, b.MixCount, b.SideCount)
		b.SizeName = tierName(tier)
	default:
		return pricing.Breakdown{}, errs.NewConfigurationIsInvalidError("pricing plan", fmt.Sprintf("%T", plan))
	}

	return b, nil
}

func sizedSubtotal(tier menu.SizeTier, cfg *pricing.Config, includedMixes, mixCount, sideCount int) kernel.Money {
	subtotal := tier.BasePrice()
	subtotal = subtotal.Add(cfg.ExtraMixPrice().Times(max(0, mixCount-includedMixes)))
	if side := cfg.DefaultSidePrice(); side != nil {
		subtotal = subtotal.Add(side.Times(sideCount))
	}
	return subtotal
}

func validateLines(lines []pricing.Line) error {
	for _, l := range lines {
		if l.Item == nil {
			return errs.NewValueIsRequiredError("item")
		}
		if l.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, 1, "unbounded")
		}
		if !l.Item.IsActive() {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("%w: %s", ErrInactiveItem, l.Item.Name()))
		}
	}
	return nil
}

func compareBreakdownLines(a, b pricing.BreakdownLine) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch {
	case a.ItemID.Less(b.ItemID):
		return -1
	case b.ItemID.Less(a.ItemID):
		return 1
	default:
		return 0
	}
}

func tierName(t menu.SizeTier) *string {
	name := t.Name()
	return &name
}
