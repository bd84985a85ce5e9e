package order

import (
	"errors"
	"fmt"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

// Line is one ordered item with the unit price frozen when the order was
// assembled. Total is unit price times quantity.
type Line struct {
	itemID    kernel.UUID
	quantity  int
	unitPrice kernel.Money
	total     kernel.Money
}

func NewLine(itemID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	var qtyErr error
	if quantity < 1 {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if err := errors.Join(itemID.Validate(), qtyErr); err != nil {
		return Line{}, err
	}

	return Line{
		itemID:    itemID,
		quantity:  quantity,
		unitPrice: unitPrice,
		total:     unitPrice.Times(quantity),
	}, nil
}

// RestoreLine rebuilds a persisted line, keeping the stored total.
func RestoreLine(itemID kernel.UUID, quantity int, unitPrice, total kernel.Money) (Line, error) {
	l, err := NewLine(itemID, quantity, unitPrice)
	if err != nil {
		return Line{}, err
	}
	l.total = total
	return l, nil
}

func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Total() kernel.Money {
	return l.total
}

func (l Line) String() string {
	return fmt.Sprintf("%s x%d @ %s", l.itemID, l.quantity, l.unitPrice)
}
