package queries

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/services"
)

// GetMenuQueryHandler lists active items in menu order: display order with
// unordered items last, then name.
type GetMenuQueryHandler struct {
	readers CatalogReaderFactory
}

func NewGetMenuQueryHandler(readers CatalogReaderFactory) GetMenuQueryHandler {
	return GetMenuQueryHandler{readers: readers}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	reader := h.readers.Create()
	menus := reader.MenuRepository()

	all, err := menus.GetAll(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	listed := make([]*menu.Item, 0, len(all))
	ids := make([]kernel.UUID, 0, len(all))
	for _, item := range all {
		if !item.IsActive() {
			continue
		}
		if c := query.Category(); c != nil && item.Category() != *c {
			continue
		}
		listed = append(listed, item)
		ids = append(ids, item.ID())
	}

	var calendar menu.Calendar
	if query.Date() != nil {
		calendar, err = menus.LoadCalendar(ctx, ids)
		if err != nil {
			return GetMenuQueryResponse{}, err
		}
	}
	resolver := services.NewAvailabilityResolver(calendar)

	items := make([]MenuItemView, 0, len(listed))
	for _, item := range listed {
		view := MenuItemView{
			ID:           item.ID(),
			Name:         item.Name(),
			Description:  item.Description(),
			Category:     item.Category(),
			Price:        item.Price(),
			DisplayOrder: item.DisplayOrder(),
			ImageURL:     item.ImageURL(),
			Available:    resolver.IsAvailable(item, query.Date()),
		}
		if d := query.Date(); d != nil {
			if o, ok := calendar.Override(item.ID(), *d); ok {
				view.MaxQty = o.MaxQty()
			}
		}
		items = append(items, view)
	}

	tiers, err := reader.SizeTierRepository().GetAll(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	tierViews := make([]SizeTierView, 0, len(tiers))
	for _, t := range tiers {
		tierViews = append(tierViews, SizeTierView{
			ID:        t.ID(),
			Name:      t.Name(),
			BasePrice: t.BasePrice(),
			MaxMixes:  t.MaxMixes(),
			MaxSides:  t.MaxSides(),
		})
	}

	cfg, err := reader.PricingConfigRepository().Get(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	return GetMenuQueryResponse{
		Items:        items,
		Tiers:        tierViews,
		Strategy:     cfg.Strategy().String(),
		SizeRequired: cfg.Strategy().RequiresSize(),
	}, nil
}
