package commands_test

import (
	"testing"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/payment"

	"github.com/stretchr/testify/require"
)

// storedOrder is an order as the repository would return it: restored at
// version 1 with no pending events.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.NewUUID(), 1, kernel.MustMoney("15.00"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, []order.Line{line},
		kernel.MustMoney("15.00"), status, nil, order.PickupInfo(), handlerNow, 1)
	require.NoError(t, err)
	return o
}

func storedPayment(t *testing.T, o *order.Order, status payment.Status) *payment.Payment {
	t.Helper()

	p, err := payment.RestorePayment(payment.RestorePaymentParams{
		ID:        kernel.NewUUID(),
		OrderID:   o.ID(),
		Amount:    o.Total(),
		Method:    payment.Pix,
		Status:    status,
		CreatedAt: handlerNow,
		Version:   1,
	})
	require.NoError(t, err)
	return p
}
