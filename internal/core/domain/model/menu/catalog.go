package menu

import (
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
)

// Catalog is the read-only snapshot an order is assembled against: the items
// the request refers to, their availability rules and every size tier.
// Nothing in a Catalog is mutated after construction.
type Catalog struct {
	items    map[kernel.UUID]*Item
	calendar Calendar
	tiers    []SizeTier
}

func NewCatalog(items []*Item, calendar Calendar, tiers []SizeTier) Catalog {
	byID := make(map[kernel.UUID]*Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	return Catalog{
		items:    byID,
		calendar: calendar,
		tiers:    append([]SizeTier(nil), tiers...),
	}
}

// ItemsByIDs resolves ids in one pass. Unknown ids are skipped, so a result
// shorter than ids means at least one id is unknown.
func (c Catalog) ItemsByIDs(ids []kernel.UUID) []*Item {
	found := make([]*Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.items[id]; ok {
			found = append(found, item)
		}
	}
	return found
}

func (c Catalog) Item(id kernel.UUID) (*Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c Catalog) Calendar() Calendar {
	return c.calendar
}

func (c Catalog) Tiers() []SizeTier {
	return append([]SizeTier(nil), c.tiers...)
}

// FindTier looks a tier up by name, case-insensitively.
func (c Catalog) FindTier(name string) (SizeTier, bool) {
	if strings.TrimSpace(name) == "" {
		return SizeTier{}, false
	}
	for _, t := range c.tiers {
		if t.Matches(name) {
			return t, true
		}
	}
	return SizeTier{}, false
}
