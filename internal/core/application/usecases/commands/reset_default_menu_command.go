package commands

import (
	"errors"

	"lunchbox/internal/pkg/guard"
)

var (
	ErrResetDefaultMenuCommandIsNotConstructed = errors.New(
		"ResetDefaultMenuCommand must be created via NewResetDefaultMenuCommand constructor",
	)
)

// ResetDefaultMenuCommand restores the standard menu. It has no parameters;
// the defaults come from storage.
type ResetDefaultMenuCommand struct {
	guard guard.ConstructorGuard
}

func NewResetDefaultMenuCommand() ResetDefaultMenuCommand {
	return ResetDefaultMenuCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetDefaultMenuCommand) Validate() error {
	return c.guard.Validate(ErrResetDefaultMenuCommandIsNotConstructed)
}
