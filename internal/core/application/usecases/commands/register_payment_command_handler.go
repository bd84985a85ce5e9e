package commands

import (
	"context"
	"errors"
	"time"

	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/pkg/errs"
)

// RegisterPaymentCommandHandler keeps one payment per order: the first call
// creates it, later calls edit it while it is pending.
type RegisterPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      func() time.Time
}

func NewRegisterPaymentCommandHandler(uowFactory PaymentUoWFactory, clock func() time.Time) RegisterPaymentCommandHandler {
	return RegisterPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RegisterPaymentCommandHandler) Handle(ctx context.Context, cmd RegisterPaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	payments := uow.PaymentRepository()
	d := cmd.Details()

	p, err := payments.GetByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		amount := o.Total()
		if d.Amount != nil {
			amount = *d.Amount
		}
		method := payment.UnknownMethod
		if d.Method != nil {
			method = *d.Method
		}

		p, err = payment.NewPayment(cmd.PaymentID(), o.ID(), amount, method, h.clock())
		if err != nil {
			return nil, err
		}
		if err = p.Update(d); err != nil {
			return nil, err
		}
		if err = payments.Add(ctx, p); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err = p.Update(d); err != nil {
			return nil, err
		}
		if err = payments.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
