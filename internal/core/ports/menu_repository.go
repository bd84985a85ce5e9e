// Package ports defines the persistence and messaging contracts of the
// lunchbox core. Adapters implement them; command and query handlers
// depend on them only.
package ports

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items, their
// availability calendar and the standard menu defaults.
type MenuRepository interface {
	// Add persists a new item. A name already used by another item,
	// compared case-insensitively, is rejected with a validation error.
	Add(ctx context.Context, item *menu.Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *menu.Item) error

	// Get retrieves an item by id. Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetByIDs resolves a batch of ids in one round trip. Unknown ids are
	// skipped; callers compare counts.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error)

	// GetAll returns every item, active or not.
	GetAll(ctx context.Context) ([]*menu.Item, error)

	// ExistsByName reports whether an item with this name exists,
	// case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// LoadCalendar returns the overrides and weekly patterns of the given
	// items as an immutable snapshot.
	LoadCalendar(ctx context.Context, itemIDs []kernel.UUID) (menu.Calendar, error)

	// SaveDateOverride inserts or replaces the override for (item, date).
	SaveDateOverride(ctx context.Context, override menu.DateOverride) error

	// SaveWeeklyPattern inserts or replaces the pattern for (item, weekday).
	SaveWeeklyPattern(ctx context.Context, pattern menu.WeeklyPattern) error

	// GetDefaults returns the standard menu entries.
	GetDefaults(ctx context.Context) ([]menu.DefaultItem, error)
}

// SizeTierRepository defines the persistence contract for lunchbox sizes.
type SizeTierRepository interface {
	// Add persists a new tier. Names are unique case-insensitively.
	Add(ctx context.Context, tier menu.SizeTier) error

	// GetAll returns every tier ordered by base price.
	GetAll(ctx context.Context) ([]menu.SizeTier, error)
}
