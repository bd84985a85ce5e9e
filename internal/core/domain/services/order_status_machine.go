package services

import (
	"fmt"
	"time"

	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"
)

// OrderStatusMachine applies status changes to orders and the order side of
// payment confirmation. Persisting the result atomically is the caller's job.
//
// Example:
//
//	machine := services.NewOrderStatusMachine()
//	changed, err := machine.ConfirmPayment(p, o, time.Now())
//	if err != nil {
//	    // refused payment, or order no longer in CRIADO
//	}
//	if changed {
//	    // save both payment and order in one unit of work
//	}
type OrderStatusMachine struct{}

func NewOrderStatusMachine() OrderStatusMachine {
	return OrderStatusMachine{}
}

// Transition moves o to target. reason is required for CANCELADO.
func (OrderStatusMachine) Transition(o *order.Order, target order.Status, reason string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Transition(target, reason, now)
}

// ConfirmPayment confirms p and moves o to PAGO. An already confirmed
// payment is a successful no-op and reports false; nothing is changed when
// an error is returned.
func (OrderStatusMachine) ConfirmPayment(p *payment.Payment, o *order.Order, now time.Time) (bool, error) {
	if err := belongTogether(p, o); err != nil {
		return false, err
	}

	switch p.Status() {
	case payment.Confirmed:
		return false, nil
	case payment.Refused:
		return false, errs.NewValueIsInvalidErrorWithCause("payment", payment.ErrPaymentRefused)
	case payment.Pending, payment.UnknownStatus:
	}

	if o.Status() != order.Created {
		return false, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: order is %s, payment needs %s", order.ErrInvalidTransition, o.Status(), order.Created))
	}

	if _, err := p.Confirm(now); err != nil {
		return false, err
	}
	if err := o.MarkPaid(now); err != nil {
		return false, err
	}
	return true, nil
}

// RefusePayment refuses p. An already refused payment is a successful no-op
// and reports false. The order is left as it is.
func (OrderStatusMachine) RefusePayment(p *payment.Payment, reason string, now time.Time) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	return p.Refuse(reason, now)
}

func belongTogether(p *payment.Payment, o *order.Order) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if !p.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("payment",
			fmt.Errorf("payment %s belongs to order %s, not %s", p.ID(), p.OrderID(), o.ID()))
	}
	return nil
}
