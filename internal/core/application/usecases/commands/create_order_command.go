package commands

import (
	"errors"
	"strings"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/services"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer placing a lunchbox order.
// Lines are passed through as sent; aggregation of repeated items and the
// rest of the order rules are applied by the order assembler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID,
//	    []services.RequestedLine{{ItemID: riceID, Quantity: 1}, {ItemID: beefID, Quantity: 2}},
//	    "Medium", &date, order.PickupInfo())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []services.RequestedLine
	sizeName   string
	date       *kernel.Date
	delivery   order.DeliveryInfo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and the optional date. A nil
// date means the order is for the handler's current day.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	lines []services.RequestedLine,
	sizeName string,
	date *kernel.Date,
	delivery order.DeliveryInfo,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		sizeName: strings.TrimSpace(sizeName),
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setDate(date),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Lines() []services.RequestedLine {
	return append([]services.RequestedLine(nil), c.lines...)
}

func (c CreateOrderCommand) SizeName() string {
	return c.sizeName
}

func (c CreateOrderCommand) Date() *kernel.Date {
	return c.date
}

func (c CreateOrderCommand) Delivery() order.DeliveryInfo {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	for _, l := range lines {
		if err := l.ItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("item id", err)
		}
	}
	c.lines = append([]services.RequestedLine(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setDate(date *kernel.Date) error {
	if date == nil {
		return nil
	}
	if err := date.Validate(); err != nil {
		return err
	}
	d := *date
	c.date = &d
	return nil
}
