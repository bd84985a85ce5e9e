package menu

import (
	"fmt"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

type overrideKey struct {
	itemID kernel.UUID
	date   kernel.Date
}

type weeklyKey struct {
	itemID  kernel.UUID
	weekday kernel.Weekday
}

// Calendar is an immutable index of availability rules. The zero value is an
// empty calendar in which nothing is overridden.
type Calendar struct {
	overrides map[overrideKey]DateOverride
	weekly    map[weeklyKey]WeeklyPattern
}

// NewCalendar indexes the rules. At most one override per (item, date) and one
// pattern per (item, weekday) is allowed.
func NewCalendar(overrides []DateOverride, patterns []WeeklyPattern) (Calendar, error) {
	c := Calendar{
		overrides: make(map[overrideKey]DateOverride, len(overrides)),
		weekly:    make(map[weeklyKey]WeeklyPattern, len(patterns)),
	}

	for _, o := range overrides {
		k := overrideKey{itemID: o.ItemID(), date: o.Date()}
		if _, dup := c.overrides[k]; dup {
			return Calendar{}, errs.NewValueIsInvalidErrorWithCause(
				"date override", fmt.Errorf("duplicate override for item %s on %s", o.ItemID(), o.Date()))
		}
		c.overrides[k] = o
	}

	for _, p := range patterns {
		k := weeklyKey{itemID: p.ItemID(), weekday: p.Weekday()}
		if _, dup := c.weekly[k]; dup {
			return Calendar{}, errs.NewValueIsInvalidErrorWithCause(
				"weekly pattern", fmt.Errorf("duplicate pattern for item %s on %s", p.ItemID(), p.Weekday()))
		}
		c.weekly[k] = p
	}

	return c, nil
}

func (c Calendar) Override(itemID kernel.UUID, date kernel.Date) (DateOverride, bool) {
	o, ok := c.overrides[overrideKey{itemID: itemID, date: date}]
	return o, ok
}

func (c Calendar) Weekly(itemID kernel.UUID, weekday kernel.Weekday) (WeeklyPattern, bool) {
	p, ok := c.weekly[weeklyKey{itemID: itemID, weekday: weekday}]
	return p, ok
}
