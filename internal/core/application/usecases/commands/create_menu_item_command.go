package commands

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
)

// MenuItemParams are the optional presentation fields of a new menu item.
type MenuItemParams struct {
	Description  string
	Active       bool
	DisplayOrder *int
	ImageURL     string
}

// CreateMenuItemCommand adds a custom item to the menu.
//
// Example:
//
//	cmd, err := NewCreateMenuItemCommand(kernel.NewUUID(), "Feijoada", "MIX",
//	    kernel.MustMoney("9.50"), MenuItemParams{Active: true})
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	name     string
	category menu.Category
	price    kernel.Money
	params   MenuItemParams

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	itemID kernel.UUID,
	name, category string,
	price kernel.Money,
	params MenuItemParams,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		price:  price,
		params: params,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setCategory(category),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateMenuItemCommand) Name() string {
	return c.name
}

func (c CreateMenuItemCommand) Category() menu.Category {
	return c.category
}

func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c CreateMenuItemCommand) Params() MenuItemParams {
	return c.params
}

func (c *CreateMenuItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.itemID = id
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category string) error {
	cat, err := menu.ParseCategory(category)
	if err != nil {
		return err
	}
	c.category = cat
	return nil
}
