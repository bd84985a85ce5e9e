package commands

import (
	"context"
	"time"

	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler applies a status change to a stored order.
// The write is version-checked, so two concurrent changes cannot both win.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    services.OrderStatusMachine
	clock      func() time.Time
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock func() time.Time) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewOrderStatusMachine(),
		clock:      clock,
	}
}

// Handle loads the order, transitions it and saves it. A rejected transition
// leaves the stored order untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.machine.Transition(o, cmd.Target(), cmd.Reason(), h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
