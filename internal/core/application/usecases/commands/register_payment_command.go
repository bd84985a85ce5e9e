package commands

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrRegisterPaymentCommandIsNotConstructed = errors.New(
		"RegisterPaymentCommand must be created via NewRegisterPaymentCommand constructor",
	)
)

// RegisterPaymentCommand creates the payment of an order, or edits it while
// it is still pending. Every field but the order is optional on edits; a new
// payment needs a method and defaults its amount to the order total.
//
// Example:
//
//	cmd, err := NewRegisterPaymentCommand(kernel.NewUUID(), orderID, "PIX", nil,
//	    payment.Details{PixTxID: "E123"})
type RegisterPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	details   payment.Details

	guard guard.ConstructorGuard
}

// NewRegisterPaymentCommand parses method when given. paymentID is used only
// when the order has no payment yet. d.Method is overwritten by method.
func NewRegisterPaymentCommand(
	paymentID, orderID kernel.UUID,
	method string,
	amount *kernel.Money,
	d payment.Details,
) (RegisterPaymentCommand, error) {
	cmd := RegisterPaymentCommand{
		details: d,
		guard:   guard.NewConstructorGuard(),
	}
	cmd.details.Amount = amount
	cmd.details.Method = nil

	var methodErr error
	if strings.TrimSpace(method) != "" {
		m, err := payment.ParseMethod(method)
		if err != nil {
			methodErr = err
		} else {
			cmd.details.Method = &m
		}
	}

	if err := errors.Join(
		paymentID.Validate(),
		orderID.Validate(),
		methodErr,
	); err != nil {
		return RegisterPaymentCommand{}, err
	}

	cmd.paymentID = paymentID
	cmd.orderID = orderID
	return cmd, nil
}

func (c RegisterPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPaymentCommandIsNotConstructed)
}

func (c RegisterPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c RegisterPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RegisterPaymentCommand) Details() payment.Details {
	return c.details
}
