package commands

import (
	"context"

	"lunchbox/internal/core/domain/model/menu"
)

// CreateSizeTierCommandHandler stores a new size tier. A duplicate name is
// reported by the repository as a validation error.
type CreateSizeTierCommandHandler struct {
	uowFactory SizeTierUoWFactory
}

func NewCreateSizeTierCommandHandler(uowFactory SizeTierUoWFactory) CreateSizeTierCommandHandler {
	return CreateSizeTierCommandHandler{uowFactory: uowFactory}
}

func (h *CreateSizeTierCommandHandler) Handle(ctx context.Context, cmd CreateSizeTierCommand) (menu.SizeTier, error) {
	if err := cmd.Validate(); err != nil {
		return menu.SizeTier{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return menu.SizeTier{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tier := cmd.Tier()
	if err := uow.SizeTierRepository().Add(ctx, tier); err != nil {
		return menu.SizeTier{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return menu.SizeTier{}, err
	}

	return tier, nil
}
