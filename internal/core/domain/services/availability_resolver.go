package services

import (
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
)

// AvailabilityResolver decides availability over an immutable calendar.
//
// Precedence, first match wins:
//  1. inactive item: unavailable
//  2. no date: available
//  3. a DateOverride for (item, date) decides
//  4. a WeeklyPattern for (item, ISO weekday of date) decides
//  5. available
//
// Example:
//
//	resolver := services.NewAvailabilityResolver(catalog.Calendar())
//	if !resolver.IsAvailable(item, &date) {
//	    // item cannot be ordered for that date
//	}
type AvailabilityResolver struct {
	calendar menu.Calendar
}

func NewAvailabilityResolver(calendar menu.Calendar) AvailabilityResolver {
	return AvailabilityResolver{calendar: calendar}
}

func (r AvailabilityResolver) IsAvailable(item *menu.Item, date *kernel.Date) bool {
	if item == nil || !item.IsActive() {
		return false
	}
	if date == nil {
		return true
	}

	if o, ok := r.calendar.Override(item.ID(), *date); ok {
		return o.Available()
	}
	if p, ok := r.calendar.Weekly(item.ID(), date.Weekday()); ok {
		return p.Available()
	}
	return true
}

// WithinLimit reports whether qty units fit the max quantity of the date
// override, if any. Items without an override on date have no limit.
func (r AvailabilityResolver) WithinLimit(item *menu.Item, date *kernel.Date, qty int) bool {
	if item == nil || date == nil {
		return true
	}
	o, ok := r.calendar.Override(item.ID(), *date)
	if !ok || o.MaxQty() == nil {
		return true
	}
	return qty <= *o.MaxQty()
}
