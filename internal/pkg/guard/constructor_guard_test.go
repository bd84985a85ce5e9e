package guard_test

import (
	"errors"
	"testing"

	"lunchbox/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("SizeTier must be created via NewSizeTier")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type tier struct {
		name  string
		guard guard.ConstructorGuard
	}
	errTierNotConstructed := errors.New("tier must be created via newTier")

	newTier := func(name string) (tier, error) {
		if name == "" {
			return tier{}, errors.New("name is required")
		}
		return tier{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_marks_value_as_constructed", func(t *testing.T) {
		v, err := newTier("M")

		require.NoError(t, err)
		require.NoError(t, v.guard.Validate(errTierNotConstructed))
	})

	t.Run("copies_keep_the_guard_state", func(t *testing.T) {
		v, err := newTier("G")
		require.NoError(t, err)

		cp := v

		require.NoError(t, cp.guard.Validate(errTierNotConstructed))
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		v := tier{name: "P"}

		require.ErrorIs(t, v.guard.Validate(errTierNotConstructed), errTierNotConstructed)
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
