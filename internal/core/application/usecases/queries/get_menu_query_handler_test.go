package queries_test

import (
	"testing"
	"time"

	"lunchbox/internal/core/application/usecases/queries"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/model/pricing"
	"lunchbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMenuQuery(t *testing.T) {
	t.Run("empty category lists everything", func(t *testing.T) {
		q, err := queries.NewGetMenuQuery(" ", nil)

		require.NoError(t, err)
		assert.Nil(t, q.Category())
		assert.Nil(t, q.Date())
	})

	t.Run("parses the category", func(t *testing.T) {
		q, err := queries.NewGetMenuQuery("mix", nil)

		require.NoError(t, err)
		require.NotNil(t, q.Category())
		assert.Equal(t, menu.Mix, *q.Category())
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		_, err := queries.NewGetMenuQuery("DESSERT", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

type menuFixture struct {
	rice, beans, salad, egg *menu.Item
	tier                    menu.SizeTier
}

func newMenuFixture(t *testing.T) menuFixture {
	t.Helper()

	one, two := 1, 2
	rice, err := menu.RestoreItem(kernel.NewUUID(), "Rice", "white", menu.Base, kernel.MustMoney("5.00"),
		true, &one, "", nil)
	require.NoError(t, err)
	beans, err := menu.RestoreItem(kernel.NewUUID(), "Beans", "", menu.Mix, kernel.MustMoney("4.00"),
		false, &two, "", nil)
	require.NoError(t, err)
	salad, err := menu.RestoreItem(kernel.NewUUID(), "Salad", "", menu.Side, kernel.MustMoney("3.50"),
		true, nil, "https://img.example/salad.png", nil)
	require.NoError(t, err)
	egg, err := menu.RestoreItem(kernel.NewUUID(), "Egg", "", menu.Mix, kernel.MustMoney("2.00"),
		true, nil, "", nil)
	require.NoError(t, err)
	tier, err := menu.NewSizeTier(kernel.NewUUID(), "M", kernel.MustMoney("18.00"), 2, 1)
	require.NoError(t, err)

	return menuFixture{rice: rice, beans: beans, salad: salad, egg: egg, tier: tier}
}

func TestGetMenuQueryHandler_Handle_WithoutDate(t *testing.T) {
	ctx := t.Context()
	f := newMenuFixture(t)
	q, err := queries.NewGetMenuQuery("", nil)
	require.NoError(t, err)

	reader := newMockCatalogReader()
	reader.menus.On("GetAll", ctx).Return([]*menu.Item{f.rice, f.beans, f.egg, f.salad}, nil).Once()
	reader.tiers.On("GetAll", ctx).Return([]menu.SizeTier{f.tier}, nil).Once()
	reader.configs.On("Get", ctx).Return(pricing.DefaultConfig(), nil).Once()

	res, err := queries.NewGetMenuQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	assert.Equal(t, "Rice", res.Items[0].Name)
	assert.Equal(t, "Egg", res.Items[1].Name)
	assert.Equal(t, "Salad", res.Items[2].Name)
	for _, item := range res.Items {
		assert.True(t, item.Available, item.Name)
		assert.Nil(t, item.MaxQty, item.Name)
	}
	require.Len(t, res.Tiers, 1)
	assert.Equal(t, "M", res.Tiers[0].Name)
	assert.Equal(t, "PER_ITEM", res.Strategy)
	assert.False(t, res.SizeRequired)
	reader.menus.AssertNotCalled(t, "LoadCalendar")
	reader.menus.AssertExpectations(t)
}

func TestGetMenuQueryHandler_Handle_OnDate(t *testing.T) {
	ctx := t.Context()
	f := newMenuFixture(t)
	monday := kernel.DateOf(time.Date(2024, time.May, 6, 9, 0, 0, 0, time.Local))

	three := 3
	riceLimit, err := menu.NewDateOverride(f.rice.ID(), monday, true, &three)
	require.NoError(t, err)
	eggOff, err := menu.NewDateOverride(f.egg.ID(), monday, false, nil)
	require.NoError(t, err)
	mondayWeekday, err := kernel.NewWeekday(1)
	require.NoError(t, err)
	noSaladOnMondays, err := menu.NewWeeklyPattern(f.salad.ID(), mondayWeekday, false)
	require.NoError(t, err)
	calendar, err := menu.NewCalendar([]menu.DateOverride{riceLimit, eggOff}, []menu.WeeklyPattern{noSaladOnMondays})
	require.NoError(t, err)

	q, err := queries.NewGetMenuQuery("", &monday)
	require.NoError(t, err)

	cfg, err := pricing.RestoreConfig(pricing.FixedSize, 1, kernel.ZeroMoney(), nil, 2)
	require.NoError(t, err)

	reader := newMockCatalogReader()
	reader.menus.On("GetAll", ctx).Return([]*menu.Item{f.rice, f.beans, f.egg, f.salad}, nil).Once()
	reader.menus.On("LoadCalendar", ctx, []kernel.UUID{f.rice.ID(), f.egg.ID(), f.salad.ID()}).
		Return(calendar, nil).Once()
	reader.tiers.On("GetAll", ctx).Return([]menu.SizeTier{f.tier}, nil).Once()
	reader.configs.On("Get", ctx).Return(cfg, nil).Once()

	res, err := queries.NewGetMenuQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	assert.True(t, res.Items[0].Available)
	require.NotNil(t, res.Items[0].MaxQty)
	assert.Equal(t, 3, *res.Items[0].MaxQty)
	assert.False(t, res.Items[1].Available)
	assert.False(t, res.Items[2].Available)
	assert.Equal(t, "FIXED_SIZE", res.Strategy)
	assert.True(t, res.SizeRequired)
	reader.menus.AssertExpectations(t)
}

func TestGetMenuQueryHandler_Handle_CategoryFilter(t *testing.T) {
	ctx := t.Context()
	f := newMenuFixture(t)
	q, err := queries.NewGetMenuQuery("MIX", nil)
	require.NoError(t, err)

	reader := newMockCatalogReader()
	reader.menus.On("GetAll", ctx).Return([]*menu.Item{f.rice, f.beans, f.egg, f.salad}, nil).Once()
	reader.tiers.On("GetAll", ctx).Return([]menu.SizeTier{}, nil).Once()
	reader.configs.On("Get", ctx).Return(pricing.DefaultConfig(), nil).Once()

	res, err := queries.NewGetMenuQueryHandler(reader).Handle(ctx, q)
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, f.egg.ID(), res.Items[0].ID)
	assert.Equal(t, menu.Mix, res.Items[0].Category)
}

func TestGetMenuQueryHandler_Handle_NotConstructed(t *testing.T) {
	_, err := queries.NewGetMenuQueryHandler(newMockCatalogReader()).Handle(t.Context(), queries.GetMenuQuery{})

	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}
