package pricing

import (
	"fmt"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

// DefaultIncludedMixCount is the number of mixes a FIXED_SIZE base price covers
// when nothing else is configured.
const DefaultIncludedMixCount = 1

// Config is the single live pricing configuration. Version is the optimistic
// concurrency token; zero means the config has never been stored.
type Config struct {
	strategy         Strategy
	includedMixCount int
	extraMixPrice    kernel.Money
	defaultSidePrice *kernel.Money
	version          int
}

// DefaultConfig is what the loader returns when nothing is stored: PER_ITEM,
// one included mix, zero extra prices and no side price.
func DefaultConfig() *Config {
	return &Config{
		strategy:         PerItem,
		includedMixCount: DefaultIncludedMixCount,
	}
}

// RestoreConfig rebuilds the config from storage. The strategy is not
// validated here; see Strategy.
func RestoreConfig(
	strategy Strategy,
	includedMixCount int,
	extraMixPrice kernel.Money,
	defaultSidePrice *kernel.Money,
	version int,
) (*Config, error) {
	c := &Config{
		strategy:         strategy,
		extraMixPrice:    extraMixPrice,
		defaultSidePrice: defaultSidePrice,
		version:          version,
	}
	if err := c.SetIncludedMixCount(includedMixCount); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Strategy() Strategy {
	return c.strategy
}

func (c *Config) IncludedMixCount() int {
	return c.includedMixCount
}

func (c *Config) ExtraMixPrice() kernel.Money {
	return c.extraMixPrice
}

// DefaultSidePrice is nil when sides are not charged under size strategies.
func (c *Config) DefaultSidePrice() *kernel.Money {
	return c.defaultSidePrice
}

func (c *Config) Version() int {
	return c.version
}

// SetVersion records the version of the stored row after a repository write.
func (c *Config) SetVersion(version int) {
	c.version = version
}

func (c *Config) IsStored() bool {
	return c.version > 0
}

// ChangeStrategy switches the live strategy.
func (c *Config) ChangeStrategy(s Strategy) error {
	if !s.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("pricing strategy", unknownStrategy(string(s)))
	}
	c.strategy = s
	return nil
}

func (c *Config) SetIncludedMixCount(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidErrorWithCause("included mix count", fmt.Errorf("%d is negative", n))
	}
	c.includedMixCount = n
	return nil
}

func (c *Config) SetExtraMixPrice(price kernel.Money) {
	c.extraMixPrice = price
}

func (c *Config) SetDefaultSidePrice(price *kernel.Money) {
	c.defaultSidePrice = price
}
