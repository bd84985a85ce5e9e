package menu

import (
	"fmt"
	"strings"

	"lunchbox/internal/pkg/errs"
)

// Category classifies a menu item for composition counting and pricing.
//
//	BASE  the starch of the lunchbox, at most one unit per order
//	MIX   a protein or main dish, counted against the size tier
//	SIDE  a side dish, optionally charged a flat price per unit
type Category int

const (
	// UnknownCategory catches uninitialized values.
	UnknownCategory Category = iota
	Base
	Mix
	Side
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory has no wire form
	return map[Category]string{
		Base: "BASE",
		Mix:  "MIX",
		Side: "SIDE",
	}
}

// ParseCategory accepts the wire names case-insensitively.
func ParseCategory(s string) (Category, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for c, name := range getCategoryStrings() {
		if name == want {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category", fmt.Errorf("%q is not one of BASE, MIX, SIDE", s))
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}
