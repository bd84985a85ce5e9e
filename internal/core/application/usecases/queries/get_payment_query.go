package queries

import (
	"errors"
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrGetPaymentQueryIsNotConstructed = errors.New(
		"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
	)
)

// GetPaymentQuery looks up the payment of an order.
type GetPaymentQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPaymentQuery(orderID kernel.UUID) (GetPaymentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetPaymentQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

func (q GetPaymentQuery) OrderID() kernel.UUID {
	return q.orderID
}

type PaymentView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Amount      kernel.Money
	Method      payment.Method
	Status      payment.Status
	Reference   string
	Note        string
	PixTxID     string
	CardPresent bool
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}
