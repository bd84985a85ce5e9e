package commands

import (
	"context"
	"time"

	"lunchbox/internal/core/domain/services"
)

// ConfirmPaymentCommandHandler confirms a payment and moves its order to
// PAGO in one transaction. Confirming twice is a successful no-op.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	machine    services.OrderStatusMachine
	clock      func() time.Time
}

func NewConfirmPaymentCommandHandler(uowFactory PaymentUoWFactory, clock func() time.Time) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewOrderStatusMachine(),
		clock:      clock,
	}
}

func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	payments := uow.PaymentRepository()

	p, err := payments.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := h.machine.ConfirmPayment(p, o, h.clock())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = payments.Update(ctx, p); err != nil {
		return err
	}
	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RefusePaymentCommandHandler refuses a payment. Refusing twice is a
// successful no-op; refusing a confirmed payment is rejected.
type RefusePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	machine    services.OrderStatusMachine
	clock      func() time.Time
}

func NewRefusePaymentCommandHandler(uowFactory PaymentUoWFactory, clock func() time.Time) RefusePaymentCommandHandler {
	return RefusePaymentCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewOrderStatusMachine(),
		clock:      clock,
	}
}

func (h *RefusePaymentCommandHandler) Handle(ctx context.Context, cmd RefusePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payments := uow.PaymentRepository()
	p, err := payments.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := h.machine.RefusePayment(p, cmd.Reason(), h.clock())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = payments.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
