// Package usecases holds what command and query handlers share.
package usecases

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/services"
	"lunchbox/internal/core/ports"
)

// CatalogSource is the read side a handler needs to price or validate an
// order request.
type CatalogSource interface {
	MenuRepository() ports.MenuRepository
	SizeTierRepository() ports.SizeTierRepository
}

// LoadCatalog builds the snapshot the order assembler works on: the
// requested items resolved in one batch, their calendar and every size tier.
func LoadCatalog(ctx context.Context, src CatalogSource, itemIDs []kernel.UUID) (menu.Catalog, error) {
	menus := src.MenuRepository()

	items, err := menus.GetByIDs(ctx, itemIDs)
	if err != nil {
		return menu.Catalog{}, err
	}

	calendar, err := menus.LoadCalendar(ctx, itemIDs)
	if err != nil {
		return menu.Catalog{}, err
	}

	tiers, err := src.SizeTierRepository().GetAll(ctx)
	if err != nil {
		return menu.Catalog{}, err
	}

	return menu.NewCatalog(items, calendar, tiers), nil
}

// RequestedItemIDs lists the distinct item ids of lines in first-seen order.
func RequestedItemIDs(lines []services.RequestedLine) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}
	return ids
}
