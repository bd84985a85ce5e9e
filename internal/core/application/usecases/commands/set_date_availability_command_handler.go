package commands

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/ports"
)

// SetDateAvailabilityCommandHandler upserts the override for (item, date).
// The item must exist; inactive items may still get overrides.
type SetDateAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSetDateAvailabilityCommandHandler(uowFactory MenuUoWFactory) SetDateAvailabilityCommandHandler {
	return SetDateAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h *SetDateAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDateAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	override := cmd.Override()
	return withMenuItem(ctx, h.uowFactory, override.ItemID(), func(repo ports.MenuRepository) error {
		return repo.SaveDateOverride(ctx, override)
	})
}

// withMenuItem checks that itemID exists and runs write in the same unit of
// work.
func withMenuItem(ctx context.Context, uowFactory MenuUoWFactory, itemID kernel.UUID, write func(repo ports.MenuRepository) error) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()
	if _, err := repo.Get(ctx, itemID); err != nil {
		return err
	}

	if err := write(repo); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
