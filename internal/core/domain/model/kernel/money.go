package kernel

import (
	"fmt"

	"lunchbox/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits every amount is rounded to.
const MoneyScale = 2

// Money is a non-negative amount with exactly two fraction digits. Values are
// rounded half-up on construction and all arithmetic is exact decimal
// arithmetic. The zero value is 0.00.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates and rounds d. Negative amounts are rejected.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", d.String()))
	}
	return Money{amount: roundHalfUp(d)}, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney parses s and panics on failure. Intended for fixtures and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies the amount by a non-negative count.
func (m Money) Times(n int) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{amount: roundHalfUp(m.amount.Mul(decimal.NewFromInt(int64(n))))}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two fraction digits, e.g. "16.50".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// decimal.Round rounds half away from zero, which is half-up for the
// non-negative amounts Money admits.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}
