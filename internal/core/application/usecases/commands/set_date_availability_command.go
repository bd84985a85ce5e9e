package commands

import (
	"errors"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrSetDateAvailabilityCommandIsNotConstructed = errors.New(
		"SetDateAvailabilityCommand must be created via NewSetDateAvailabilityCommand constructor",
	)
)

// SetDateAvailabilityCommand overrides whether an item can be ordered on
// one date, optionally capping the quantity per order.
//
// Example:
//
//	max := 10
//	cmd, err := NewSetDateAvailabilityCommand(feijoadaID, date, true, &max)
type SetDateAvailabilityCommand struct { //nolint:recvcheck //using for validation
	override menu.DateOverride

	guard guard.ConstructorGuard
}

func NewSetDateAvailabilityCommand(
	itemID kernel.UUID,
	date kernel.Date,
	available bool,
	maxQty *int,
) (SetDateAvailabilityCommand, error) {
	override, err := menu.NewDateOverride(itemID, date, available, maxQty)
	if err != nil {
		return SetDateAvailabilityCommand{}, err
	}

	return SetDateAvailabilityCommand{
		override: override,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetDateAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDateAvailabilityCommandIsNotConstructed)
}

func (c SetDateAvailabilityCommand) Override() menu.DateOverride {
	return c.override
}
