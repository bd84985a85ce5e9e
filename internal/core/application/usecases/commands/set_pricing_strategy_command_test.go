package commands_test

import (
	"testing"

	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetPricingStrategyCommand(t *testing.T) {
	cmd, err := commands.NewSetPricingStrategyCommand("fixed_size")
	require.NoError(t, err)
	assert.Equal(t, pricing.FixedSize, cmd.Strategy())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewSetPricingStrategyCommand("HALF_PRICE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrConfigurationIsInvalid)
}

func TestNewConfigurePricingCommand(t *testing.T) {
	side := kernel.MustMoney("1.50")

	cmd, err := commands.NewConfigurePricingCommand(2, kernel.MustMoney("3.00"), &side)
	require.NoError(t, err)
	assert.Equal(t, 2, cmd.IncludedMixCount())
	assert.Equal(t, "3.00", cmd.ExtraMixPrice().String())
	require.NotNil(t, cmd.DefaultSidePrice())
	assert.Equal(t, "1.50", cmd.DefaultSidePrice().String())

	_, err = commands.NewConfigurePricingCommand(-1, kernel.ZeroMoney(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
