package commands

import (
	"errors"
	"fmt"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrConfigurePricingCommandIsNotConstructed = errors.New(
		"ConfigurePricingCommand must be created via NewConfigurePricingCommand constructor",
	)
)

// ConfigurePricingCommand sets the prices the size strategies add on top of
// the tier base price. A nil default side price stops charging sides.
type ConfigurePricingCommand struct { //nolint:recvcheck //using for validation
	includedMixCount int
	extraMixPrice    kernel.Money
	defaultSidePrice *kernel.Money

	guard guard.ConstructorGuard
}

func NewConfigurePricingCommand(
	includedMixCount int,
	extraMixPrice kernel.Money,
	defaultSidePrice *kernel.Money,
) (ConfigurePricingCommand, error) {
	if includedMixCount < 0 {
		return ConfigurePricingCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"included mix count", fmt.Errorf("%d is negative", includedMixCount))
	}

	cmd := ConfigurePricingCommand{
		includedMixCount: includedMixCount,
		extraMixPrice:    extraMixPrice,
		guard:            guard.NewConstructorGuard(),
	}
	if defaultSidePrice != nil {
		p := *defaultSidePrice
		cmd.defaultSidePrice = &p
	}
	return cmd, nil
}

func (c ConfigurePricingCommand) Validate() error {
	return c.guard.Validate(ErrConfigurePricingCommandIsNotConstructed)
}

func (c ConfigurePricingCommand) IncludedMixCount() int {
	return c.includedMixCount
}

func (c ConfigurePricingCommand) ExtraMixPrice() kernel.Money {
	return c.extraMixPrice
}

func (c ConfigurePricingCommand) DefaultSidePrice() *kernel.Money {
	return c.defaultSidePrice
}
