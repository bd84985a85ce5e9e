package menu

import (
	"errors"
	"fmt"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var ErrSizeTierIsNotConstructed = errors.New("SizeTier must be created via NewSizeTier")

// SizeTier is a lunchbox size such as "P", "M" or "G". The base price is the
// starting point of the FIXED_SIZE and BASE_PLUS_ADDONS strategies; MaxMixes
// bounds the MIX quantity under FIXED_SIZE.
type SizeTier struct {
	id        kernel.UUID
	name      string
	basePrice kernel.Money
	maxMixes  int
	maxSides  int

	guard guard.ConstructorGuard
}

func NewSizeTier(id kernel.UUID, name string, basePrice kernel.Money, maxMixes, maxSides int) (SizeTier, error) {
	t := SizeTier{
		basePrice: basePrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setMaxMixes(maxMixes),
		t.setMaxSides(maxSides),
	); err != nil {
		return SizeTier{}, err
	}

	return t, nil
}

func (t SizeTier) Validate() error {
	return t.guard.Validate(ErrSizeTierIsNotConstructed)
}

func (t SizeTier) ID() kernel.UUID {
	return t.id
}

// Name is the canonical spelling stored on orders.
func (t SizeTier) Name() string {
	return t.name
}

func (t SizeTier) BasePrice() kernel.Money {
	return t.basePrice
}

func (t SizeTier) MaxMixes() int {
	return t.maxMixes
}

func (t SizeTier) MaxSides() int {
	return t.maxSides
}

// Matches compares names ignoring case and surrounding blanks.
func (t SizeTier) Matches(name string) bool {
	return strings.EqualFold(t.name, strings.TrimSpace(name))
}

func (t *SizeTier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *SizeTier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("size name")
	}
	t.name = name
	return nil
}

func (t *SizeTier) setMaxMixes(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidErrorWithCause("max mixes", fmt.Errorf("%d is negative", n))
	}
	t.maxMixes = n
	return nil
}

func (t *SizeTier) setMaxSides(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidErrorWithCause("max sides", fmt.Errorf("%d is negative", n))
	}
	t.maxSides = n
	return nil
}
