package queries

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists the active menu, optionally for one category, and
// flags each item with its availability on an optional date.
type GetMenuQuery struct {
	category *menu.Category
	date     *kernel.Date

	guard guard.ConstructorGuard
}

// NewGetMenuQuery accepts an empty category for the whole menu.
func NewGetMenuQuery(category string, date *kernel.Date) (GetMenuQuery, error) {
	q := GetMenuQuery{date: date, guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(category) != "" {
		c, err := menu.ParseCategory(category)
		if err != nil {
			return GetMenuQuery{}, err
		}
		q.category = &c
	}
	if date != nil {
		if err := date.Validate(); err != nil {
			return GetMenuQuery{}, err
		}
	}

	return q, nil
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) Category() *menu.Category {
	return q.category
}

func (q GetMenuQuery) Date() *kernel.Date {
	return q.date
}

// MenuItemView is one listed item. Available is true when no date was asked
// for; MaxQty is the per-order cap set for the date, if any.
type MenuItemView struct {
	ID           kernel.UUID
	Name         string
	Description  string
	Category     menu.Category
	Price        kernel.Money
	DisplayOrder *int
	ImageURL     string
	Available    bool
	MaxQty       *int
}

type SizeTierView struct {
	ID        kernel.UUID
	Name      string
	BasePrice kernel.Money
	MaxMixes  int
	MaxSides  int
}

// GetMenuQueryResponse carries what a client needs to build an order: the
// items, the size tiers and whether the live strategy asks for a size.
type GetMenuQueryResponse struct {
	Items        []MenuItemView
	Tiers        []SizeTierView
	Strategy     string
	SizeRequired bool
}
