package commands

import (
	"errors"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrSetWeeklyAvailabilityCommandIsNotConstructed = errors.New(
		"SetWeeklyAvailabilityCommand must be created via NewSetWeeklyAvailabilityCommand constructor",
	)
)

// SetWeeklyAvailabilityCommand sets whether an item is sold on an ISO
// weekday (1 is Monday, 7 is Sunday). Weekdays outside 1..7 are rejected
// with an out-of-range error.
type SetWeeklyAvailabilityCommand struct { //nolint:recvcheck //using for validation
	pattern menu.WeeklyPattern

	guard guard.ConstructorGuard
}

func NewSetWeeklyAvailabilityCommand(itemID kernel.UUID, weekday int, available bool) (SetWeeklyAvailabilityCommand, error) {
	day, err := kernel.NewWeekday(weekday)
	if err != nil {
		return SetWeeklyAvailabilityCommand{}, errors.Join(err, itemID.Validate())
	}

	pattern, err := menu.NewWeeklyPattern(itemID, day, available)
	if err != nil {
		return SetWeeklyAvailabilityCommand{}, err
	}

	return SetWeeklyAvailabilityCommand{
		pattern: pattern,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetWeeklyAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetWeeklyAvailabilityCommandIsNotConstructed)
}

func (c SetWeeklyAvailabilityCommand) Pattern() menu.WeeklyPattern {
	return c.pattern
}
