package pricing

import (
	"fmt"
	"strings"

	"lunchbox/internal/pkg/errs"
)

// Strategy names a pricing strategy by its wire form. A stored value outside
// the known set is kept as is so ResolvePlan can report it as a configuration
// error instead of silently falling back.
type Strategy string

const (
	PerItem        Strategy = "PER_ITEM"
	FixedSize      Strategy = "FIXED_SIZE"
	BasePlusAddons Strategy = "BASE_PLUS_ADDONS"
)

// ParseStrategy accepts the known names case-insensitively. It is used at the
// command boundary, so an unknown name is the caller's fault.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsKnown() {
		return "", errs.NewValueIsInvalidErrorWithCause("pricing strategy", unknownStrategy(s))
	}
	return st, nil
}

func (s Strategy) IsKnown() bool {
	switch s {
	case PerItem, FixedSize, BasePlusAddons:
		return true
	default:
		return false
	}
}

// RequiresSize reports whether a size tier takes part in the price.
func (s Strategy) RequiresSize() bool {
	return s == FixedSize || s == BasePlusAddons
}

func (s Strategy) String() string {
	return string(s)
}

func unknownStrategy(s string) error {
	return fmt.Errorf("%q is not one of PER_ITEM, FIXED_SIZE, BASE_PLUS_ADDONS", s)
}
