package commands

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrRefusePaymentCommandIsNotConstructed = errors.New(
		"RefusePaymentCommand must be created via NewRefusePaymentCommand constructor",
	)
)

// ConfirmPaymentCommand confirms the payment of an order and moves the
// order to PAGO.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID kernel.UUID) (ConfirmPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	return ConfirmPaymentCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RefusePaymentCommand refuses the payment of an order. The order status is
// not touched.
type RefusePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewRefusePaymentCommand(orderID kernel.UUID, reason string) (RefusePaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RefusePaymentCommand{}, err
	}
	return RefusePaymentCommand{
		orderID: orderID,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RefusePaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefusePaymentCommandIsNotConstructed)
}

func (c RefusePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RefusePaymentCommand) Reason() string {
	return c.reason
}
