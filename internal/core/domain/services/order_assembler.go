package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/pkg/errs"
)

// MaxBaseQuantity is the number of BASE units a lunchbox holds.
const MaxBaseQuantity = 1

var (
	ErrNoItems          = errors.New("no items")
	ErrUnknownItems     = errors.New("unknown item(s)")
	ErrItemUnavailable  = errors.New("item unavailable on date")
	ErrSizeRequired     = pricing.ErrSizeRequired
	ErrUnknownSize      = errors.New("unknown size")
	ErrCompositionLimit = errors.New("composition limit exceeded")
	ErrQuantityTooLarge = errors.New("quantity too large")
)

// RequestedLine is one line as the customer sent it. The same item may appear
// on several lines; quantities are summed.
type RequestedLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// OrderRequest is the input shared by quoting and order creation.
type OrderRequest struct {
	Lines []RequestedLine
	// SizeName is ignored under PER_ITEM.
	SizeName string
	// Date is the delivery date; nil skips date availability checks.
	Date *kernel.Date
}

// OrderAssembler validates an order request against a catalog snapshot,
// prices it and, for Assemble, freezes the result into an Order.
//
// Steps run in this order and the first failure wins:
//  1. aggregate lines by item, dropping non-positive quantities
//  2. resolve every item in one batch
//  3. reject inactive items, and items unavailable on the date
//  4. count MIX and SIDE quantities
//  5. reject more than MaxBaseQuantity BASE units
//  6. resolve the size tier when the strategy needs one
//  7. under FIXED_SIZE, reject more mixes than the tier allows
//  8. price and, for Assemble, build the order
//
// Example:
//
//	assembler := services.NewOrderAssembler(services.NewPricingEngine())
//	breakdown, err := assembler.Quote(req, catalog, cfg)
//	if errors.Is(err, services.ErrItemUnavailable) {
//	    // tell the customer to pick another day
//	}
type OrderAssembler struct {
	engine PricingEngine
}

func NewOrderAssembler(engine PricingEngine) OrderAssembler {
	return OrderAssembler{engine: engine}
}

// Quote runs every validation of Assemble and returns the breakdown without
// building an order.
func (a OrderAssembler) Quote(req OrderRequest, catalog menu.Catalog, cfg *pricing.Config) (pricing.Breakdown, error) {
	return a.price(req, catalog, cfg)
}

// Assemble builds a new order in status CRIADO with unit prices frozen at the
// catalog's current prices.
func (a OrderAssembler) Assemble(
	orderID, customerID kernel.UUID,
	req OrderRequest,
	delivery order.DeliveryInfo,
	catalog menu.Catalog,
	cfg *pricing.Config,
	now time.Time,
) (*order.Order, error) {
	breakdown, err := a.price(req, catalog, cfg)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(breakdown.Lines))
	for _, bl := range breakdown.Lines {
		line, err := order.NewLine(bl.ItemID, bl.Quantity, bl.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(orderID, customerID, breakdown.SizeName, lines, breakdown.Subtotal, delivery, now)
}

func (a OrderAssembler) price(req OrderRequest, catalog menu.Catalog, cfg *pricing.Config) (pricing.Breakdown, error) {
	if cfg == nil {
		return pricing.Breakdown{}, errs.NewValueIsRequiredError("pricing config")
	}

	ids, qty, err := aggregate(req.Lines)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	if len(ids) == 0 {
		return pricing.Breakdown{}, errs.NewValueIsRequiredErrorWithCause("items", ErrNoItems)
	}

	items := catalog.ItemsByIDs(ids)
	if len(items) != len(ids) {
		return pricing.Breakdown{}, unknownItemsError(ids, items)
	}

	resolver := NewAvailabilityResolver(catalog.Calendar())
	lines := make([]pricing.Line, 0, len(items))
	var baseCount, mixCount int
	for _, item := range items {
		q := qty[item.ID()]
		if !item.IsActive() {
			return pricing.Breakdown{}, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("%w: %s", ErrInactiveItem, item.Name()))
		}
		if req.Date != nil && (!resolver.IsAvailable(item, req.Date) || !resolver.WithinLimit(item, req.Date, q)) {
			return pricing.Breakdown{}, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("%w: %s on %s", ErrItemUnavailable, item.Name(), req.Date))
		}

		switch item.Category() {
		case menu.Base:
			baseCount += q
		case menu.Mix:
			mixCount += q
		case menu.Side, menu.UnknownCategory:
		}
		lines = append(lines, pricing.Line{Item: item, Quantity: q})
	}

	if baseCount > MaxBaseQuantity {
		return pricing.Breakdown{}, errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("%w: %d BASE units, at most %d", ErrCompositionLimit, baseCount, MaxBaseQuantity))
	}

	var tier *menu.SizeTier
	if cfg.Strategy().RequiresSize() {
		t, err := resolveTier(req.SizeName, catalog)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		tier = &t

		if cfg.Strategy() == pricing.FixedSize && mixCount > t.MaxMixes() {
			return pricing.Breakdown{}, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("%w: %d MIX units, size %s allows %d", ErrCompositionLimit, mixCount, t.Name(), t.MaxMixes()))
		}
	}

	plan, err := pricing.ResolvePlan(cfg, tier)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	breakdown, err := a.engine.Price(lines, cfg, plan)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return breakdown, nil
}

// aggregate sums quantities per item, keeping first-seen order. Lines with a
// non-positive quantity are dropped before summing. A sum past math.MaxInt
// is rejected.
func aggregate(lines []RequestedLine) ([]kernel.UUID, map[kernel.UUID]int, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	qty := make(map[kernel.UUID]int, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		sum, seen := qty[l.ItemID]
		if !seen {
			ids = append(ids, l.ItemID)
		}
		if sum > math.MaxInt-l.Quantity {
			return nil, nil, errs.NewValueIsOutOfRangeErrorWithCause("quantity", l.ItemID.String(), 1, math.MaxInt,
				ErrQuantityTooLarge)
		}
		qty[l.ItemID] = sum + l.Quantity
	}
	return ids, qty, nil
}

func resolveTier(name string, catalog menu.Catalog) (menu.SizeTier, error) {
	if strings.TrimSpace(name) == "" {
		return menu.SizeTier{}, errs.NewValueIsRequiredErrorWithCause("size", ErrSizeRequired)
	}
	t, ok := catalog.FindTier(name)
	if !ok {
		return menu.SizeTier{}, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%w: %q", ErrUnknownSize, name))
	}
	return t, nil
}

func unknownItemsError(ids []kernel.UUID, found []*menu.Item) error {
	known := make(map[kernel.UUID]struct{}, len(found))
	for _, item := range found {
		known[item.ID()] = struct{}{}
	}

	missing := make([]string, 0, len(ids)-len(found))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id.String())
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("items",
		errs.NewObjectNotFoundErrorWithCause("menu item", strings.Join(missing, ","), ErrUnknownItems))
}
