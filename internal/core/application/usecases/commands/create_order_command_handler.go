package commands

import (
	"context"
	"time"

	"lunchbox/internal/core/application/usecases"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/services"
)

// CreateOrderCommandHandler assembles and stores a new order. The pricing
// configuration, the catalog snapshot and the insert share one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrItemUnavailable) {
//	    // ask the customer for another date
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	assembler  services.OrderAssembler
	clock      func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// clock also decides the delivery date of orders placed without one.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory, clock func() time.Time) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewOrderAssembler(services.NewPricingEngine()),
		clock:      clock,
	}
}

// Handle validates the request against the current catalog and pricing
// configuration and persists the resulting order in status CRIADO.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	cfg, err := uow.PricingConfigRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := usecases.LoadCatalog(ctx, uow, usecases.RequestedItemIDs(cmd.Lines()))
	if err != nil {
		return nil, err
	}

	now := h.clock()
	date := cmd.Date()
	if date == nil {
		today := kernel.DateOf(now)
		date = &today
	}

	created, err := h.assembler.Assemble(
		cmd.OrderID(),
		cmd.CustomerID(),
		services.OrderRequest{Lines: cmd.Lines(), SizeName: cmd.SizeName(), Date: date},
		cmd.Delivery(),
		catalog,
		cfg,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
