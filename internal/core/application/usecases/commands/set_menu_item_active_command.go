package commands

import (
	"errors"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrSetMenuItemActiveCommandIsNotConstructed = errors.New(
		"SetMenuItemActiveCommand must be created via NewSetMenuItemActiveCommand constructor",
	)
)

// SetMenuItemActiveCommand activates or deactivates an item. Inactive items
// are hidden from the menu and rejected by quotes and orders.
type SetMenuItemActiveCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

func NewSetMenuItemActiveCommand(itemID kernel.UUID, active bool) (SetMenuItemActiveCommand, error) {
	if err := itemID.Validate(); err != nil {
		return SetMenuItemActiveCommand{}, err
	}

	return SetMenuItemActiveCommand{
		itemID: itemID,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetMenuItemActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetMenuItemActiveCommandIsNotConstructed)
}

func (c SetMenuItemActiveCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c SetMenuItemActiveCommand) Active() bool {
	return c.active
}
