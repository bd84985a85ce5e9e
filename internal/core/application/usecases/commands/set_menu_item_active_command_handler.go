package commands

import (
	"context"
)

type SetMenuItemActiveCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewSetMenuItemActiveCommandHandler(uowFactory MenuUoWFactory) SetMenuItemActiveCommandHandler {
	return SetMenuItemActiveCommandHandler{uowFactory: uowFactory}
}

// Handle writes only when the flag actually changes.
func (h *SetMenuItemActiveCommandHandler) Handle(ctx context.Context, cmd SetMenuItemActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()
	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	var changed bool
	if cmd.Active() {
		changed = item.Activate()
	} else {
		changed = item.Deactivate()
	}
	if !changed {
		return nil
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
