package commands

import (
	"errors"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrCreateSizeTierCommandIsNotConstructed = errors.New(
		"CreateSizeTierCommand must be created via NewCreateSizeTierCommand constructor",
	)
)

// CreateSizeTierCommand adds a lunchbox size used by the size strategies.
//
// Example:
//
//	cmd, err := NewCreateSizeTierCommand(kernel.NewUUID(), "Medium", kernel.MustMoney("18.00"), 2, 2)
type CreateSizeTierCommand struct { //nolint:recvcheck //using for validation
	tier menu.SizeTier

	guard guard.ConstructorGuard
}

func NewCreateSizeTierCommand(
	id kernel.UUID,
	name string,
	basePrice kernel.Money,
	maxMixes, maxSides int,
) (CreateSizeTierCommand, error) {
	tier, err := menu.NewSizeTier(id, name, basePrice, maxMixes, maxSides)
	if err != nil {
		return CreateSizeTierCommand{}, err
	}

	return CreateSizeTierCommand{
		tier:  tier,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSizeTierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSizeTierCommandIsNotConstructed)
}

func (c CreateSizeTierCommand) Tier() menu.SizeTier {
	return c.tier
}
