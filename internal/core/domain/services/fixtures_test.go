package services_test

import (
	"testing"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, category menu.Category, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), name, category, kernel.MustMoney(price))
	require.NoError(t, err)
	return item
}

func mustTier(t *testing.T, name, base string, maxMixes, maxSides int) menu.SizeTier {
	t.Helper()
	tier, err := menu.NewSizeTier(kernel.NewUUID(), name, kernel.MustMoney(base), maxMixes, maxSides)
	require.NoError(t, err)
	return tier
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

// sizedConfig is the config of the pricing examples: one included mix,
// extra mix 3.00 and side 1.50.
func sizedConfig(t *testing.T, s pricing.Strategy) *pricing.Config {
	t.Helper()
	side := kernel.MustMoney("1.50")
	cfg, err := pricing.RestoreConfig(s, 1, kernel.MustMoney("3.00"), &side, 1)
	require.NoError(t, err)
	return cfg
}
