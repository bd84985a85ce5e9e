package menu

import (
	"errors"
	"fmt"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

// DateOverride decides availability of one item on one calendar date. It
// takes precedence over any WeeklyPattern. MaxQty, when set, caps the quantity
// a single order may request on that date.
type DateOverride struct {
	itemID    kernel.UUID
	date      kernel.Date
	available bool
	maxQty    *int
}

func NewDateOverride(itemID kernel.UUID, date kernel.Date, available bool, maxQty *int) (DateOverride, error) {
	var qtyErr error
	if maxQty != nil && *maxQty < 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("max quantity", fmt.Errorf("%d is negative", *maxQty))
	}
	if err := errors.Join(itemID.Validate(), date.Validate(), qtyErr); err != nil {
		return DateOverride{}, err
	}

	o := DateOverride{itemID: itemID, date: date, available: available}
	if maxQty != nil {
		v := *maxQty
		o.maxQty = &v
	}
	return o, nil
}

func (o DateOverride) ItemID() kernel.UUID {
	return o.itemID
}

func (o DateOverride) Date() kernel.Date {
	return o.date
}

func (o DateOverride) Available() bool {
	return o.available
}

func (o DateOverride) MaxQty() *int {
	return o.maxQty
}

// Allows reports whether the override lets an order take qty units.
func (o DateOverride) Allows(qty int) bool {
	if !o.available {
		return false
	}
	return o.maxQty == nil || qty <= *o.maxQty
}

// WeeklyPattern decides availability of one item on one ISO weekday.
type WeeklyPattern struct {
	itemID    kernel.UUID
	weekday   kernel.Weekday
	available bool
}

func NewWeeklyPattern(itemID kernel.UUID, weekday kernel.Weekday, available bool) (WeeklyPattern, error) {
	if err := errors.Join(itemID.Validate(), weekday.Validate()); err != nil {
		return WeeklyPattern{}, err
	}
	return WeeklyPattern{itemID: itemID, weekday: weekday, available: available}, nil
}

func (p WeeklyPattern) ItemID() kernel.UUID {
	return p.itemID
}

func (p WeeklyPattern) Weekday() kernel.Weekday {
	return p.weekday
}

func (p WeeklyPattern) Available() bool {
	return p.available
}
