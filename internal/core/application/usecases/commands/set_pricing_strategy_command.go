package commands

import (
	"errors"

	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrSetPricingStrategyCommandIsNotConstructed = errors.New(
		"SetPricingStrategyCommand must be created via NewSetPricingStrategyCommand constructor",
	)
)

// SetPricingStrategyCommand switches the live pricing strategy. Unknown
// strategy names are rejected here, before any configuration is loaded.
type SetPricingStrategyCommand struct { //nolint:recvcheck //using for validation
	strategy pricing.Strategy

	guard guard.ConstructorGuard
}

func NewSetPricingStrategyCommand(strategy string) (SetPricingStrategyCommand, error) {
	s, err := pricing.ParseStrategy(strategy)
	if err != nil {
		return SetPricingStrategyCommand{}, err
	}

	return SetPricingStrategyCommand{
		strategy: s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetPricingStrategyCommand) Validate() error {
	return c.guard.Validate(ErrSetPricingStrategyCommandIsNotConstructed)
}

func (c SetPricingStrategyCommand) Strategy() pricing.Strategy {
	return c.strategy
}
