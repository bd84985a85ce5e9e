package commands

import (
	"context"
	"fmt"

	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/errs"
)

// CreateMenuItemCommandHandler stores a new custom item. Item names are
// unique case-insensitively.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewItem(cmd.ItemID(), cmd.Name(), cmd.Category(), cmd.Price())
	if err != nil {
		return nil, err
	}

	params := cmd.Params()
	item.SetDescription(params.Description)
	item.SetImageURL(params.ImageURL)
	if params.DisplayOrder != nil {
		item.SetDisplayOrder(*params.DisplayOrder)
	}
	if !params.Active {
		item.Deactivate()
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()
	exists, err := repo.ExistsByName(ctx, item.Name())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("item name",
			fmt.Errorf("%w: %s", menu.ErrDuplicateName, item.Name()))
	}

	if err = repo.Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
