package pricing

import (
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/menu"
)

// Line is one aggregated request line: a resolved item and its total quantity.
type Line struct {
	Item     *menu.Item
	Quantity int
}

// BreakdownLine shows an item at its current unit price. Under size
// strategies the line totals are informational; Subtotal is authoritative.
type BreakdownLine struct {
	ItemID    kernel.UUID
	Name      string
	Category  menu.Category
	UnitPrice kernel.Money
	Quantity  int
	Total     kernel.Money
}

type Breakdown struct {
	Lines     []BreakdownLine
	MixCount  int
	SideCount int
	Strategy  Strategy
	// SizeName is nil under PER_ITEM.
	SizeName *string
	Subtotal kernel.Money
}
