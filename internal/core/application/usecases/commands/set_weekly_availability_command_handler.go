package commands

import (
	"context"

	"lunchbox/internal/core/ports"
)

// SetWeeklyAvailabilityCommandHandler upserts the pattern for (item, weekday).
type SetWeeklyAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSetWeeklyAvailabilityCommandHandler(uowFactory MenuUoWFactory) SetWeeklyAvailabilityCommandHandler {
	return SetWeeklyAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h *SetWeeklyAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetWeeklyAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pattern := cmd.Pattern()
	return withMenuItem(ctx, h.uowFactory, pattern.ItemID(), func(repo ports.MenuRepository) error {
		return repo.SaveWeeklyPattern(ctx, pattern)
	})
}
