package commands

import (
	"context"

	"lunchbox/internal/core/domain/model/menu"
)

// ResetDefaultMenuCommandHandler restores every item bound to a default
// entry and deactivates active custom items, all in one transaction.
//
// Example:
//
//	handler := NewResetDefaultMenuCommandHandler(uowFactory)
//	res, err := handler.Handle(ctx, NewResetDefaultMenuCommand())
//	if err == nil {
//	    logger.Info("menu reset", "restored", res.Restored, "deactivated", res.Deactivated)
//	}
type ResetDefaultMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewResetDefaultMenuCommandHandler(uowFactory MenuUoWFactory) ResetDefaultMenuCommandHandler {
	return ResetDefaultMenuCommandHandler{uowFactory: uowFactory}
}

func (h *ResetDefaultMenuCommandHandler) Handle(ctx context.Context, cmd ResetDefaultMenuCommand) (menu.ResetResult, error) {
	if err := cmd.Validate(); err != nil {
		return menu.ResetResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return menu.ResetResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()
	defaults, err := repo.GetDefaults(ctx)
	if err != nil {
		return menu.ResetResult{}, err
	}

	items, err := repo.GetAll(ctx)
	if err != nil {
		return menu.ResetResult{}, err
	}

	res, changed := menu.ResetToDefaults(items, defaults)
	for _, item := range changed {
		if err = repo.Update(ctx, item); err != nil {
			return menu.ResetResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return menu.ResetResult{}, err
	}

	return res, nil
}
