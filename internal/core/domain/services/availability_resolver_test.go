package services_test

import (
	"testing"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityResolver_IsAvailable(t *testing.T) {
	beef := mustItem(t, "Beef", menu.Mix, "8.50")
	monday := mustDate(t, "2024-05-06")
	nextMonday := mustDate(t, "2024-05-13")
	tuesday := mustDate(t, "2024-05-07")

	closedMondays, err := menu.NewWeeklyPattern(beef.ID(), kernel.Monday, false)
	require.NoError(t, err)
	openThisMonday, err := menu.NewDateOverride(beef.ID(), monday, true, nil)
	require.NoError(t, err)

	cal, err := menu.NewCalendar([]menu.DateOverride{openThisMonday}, []menu.WeeklyPattern{closedMondays})
	require.NoError(t, err)
	resolver := services.NewAvailabilityResolver(cal)

	t.Run("override beats weekly pattern", func(t *testing.T) {
		assert.True(t, resolver.IsAvailable(beef, &monday))
	})

	t.Run("weekly pattern applies without override", func(t *testing.T) {
		assert.False(t, resolver.IsAvailable(beef, &nextMonday))
	})

	t.Run("no rule means available", func(t *testing.T) {
		assert.True(t, resolver.IsAvailable(beef, &tuesday))
	})

	t.Run("no date means available", func(t *testing.T) {
		assert.True(t, resolver.IsAvailable(beef, nil))
	})

	t.Run("inactive is never available", func(t *testing.T) {
		inactive := mustItem(t, "Fish", menu.Mix, "9.00")
		inactive.Deactivate()
		override, _ := menu.NewDateOverride(inactive.ID(), monday, true, nil)
		cal, _ := menu.NewCalendar([]menu.DateOverride{override}, nil)

		r := services.NewAvailabilityResolver(cal)

		assert.False(t, r.IsAvailable(inactive, nil))
		assert.False(t, r.IsAvailable(inactive, &monday))
	})

	t.Run("unavailable override beats available weekly pattern", func(t *testing.T) {
		rice := mustItem(t, "Rice", menu.Base, "5.00")
		open, _ := menu.NewWeeklyPattern(rice.ID(), kernel.Tuesday, true)
		closed, _ := menu.NewDateOverride(rice.ID(), tuesday, false, nil)
		cal, _ := menu.NewCalendar([]menu.DateOverride{closed}, []menu.WeeklyPattern{open})

		assert.False(t, services.NewAvailabilityResolver(cal).IsAvailable(rice, &tuesday))
	})
}

func TestAvailabilityResolver_WithinLimit(t *testing.T) {
	beef := mustItem(t, "Beef", menu.Mix, "8.50")
	monday := mustDate(t, "2024-05-06")
	tuesday := mustDate(t, "2024-05-07")
	limit := 2
	override, _ := menu.NewDateOverride(beef.ID(), monday, true, &limit)
	cal, _ := menu.NewCalendar([]menu.DateOverride{override}, nil)
	resolver := services.NewAvailabilityResolver(cal)

	assert.True(t, resolver.WithinLimit(beef, &monday, 2))
	assert.False(t, resolver.WithinLimit(beef, &monday, 3))
	assert.True(t, resolver.WithinLimit(beef, &tuesday, 100))
	assert.True(t, resolver.WithinLimit(beef, nil, 100))
}
