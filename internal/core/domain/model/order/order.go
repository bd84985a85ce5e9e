package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCancelReasonRequired is wrapped when a cancellation carries a blank reason.
	ErrCancelReasonRequired = errors.New("cancel reason is required")
)

// Order represents a lunchbox order. It is the aggregate root that owns the
// priced lines, the delivery details and the status lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Has at least one line; lines and total are frozen at creation
//   - Size name is nil under PER_ITEM pricing and the tier's canonical name otherwise
//   - Status changes only along the edges of the Status table
//   - A cancelled order keeps the reason it was cancelled with
//
// Every applied change is recorded as a domain event; the unit of work
// publishes them after commit.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// sizeName is the size tier the price was computed for, nil under PER_ITEM
	sizeName *string

	// total is the price computed at assembly time
	total kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// lines are the ordered items with frozen prices
	lines []Line

	// cancelReason is set once, on cancellation
	cancelReason *string

	// delivery holds pickup or home delivery details
	delivery DeliveryInfo

	// createdAt is the assembly time
	createdAt time.Time

	// version is the optimistic concurrency token of the stored row
	version int

	// events are recorded changes not yet published
	events []kernel.DomainEvent

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an order in status CRIADO and records OrderCreated.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The ordering customer
//   - sizeName: Canonical size tier name, nil under PER_ITEM
//   - lines: Priced lines, at least one
//   - total: The price computed by the pricing engine
//   - delivery: Pickup or home delivery details
//   - now: Creation time
//
// Example:
//
//	line, _ := order.NewLine(riceID, 1, kernel.MustMoney("5.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, nil,
//	    []order.Line{line}, kernel.MustMoney("5.00"), order.PickupInfo(), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, customerID kernel.UUID,
	sizeName *string,
	lines []Line,
	total kernel.Money,
	delivery DeliveryInfo,
	now time.Time,
) (*Order, error) {
	o := &Order{
		total:         total,
		status:        Created,
		delivery:      delivery,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSizeName(sizeName),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.record(OrderCreated{OrderID: o.id, CustomerID: o.customerID, Total: o.total, At: now})
	return o, nil
}

// RestoreOrder rebuilds an order from persistence. No events are recorded.
func RestoreOrder(
	id, customerID kernel.UUID,
	sizeName *string,
	lines []Line,
	total kernel.Money,
	status Status,
	cancelReason *string,
	delivery DeliveryInfo,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		total:         total,
		delivery:      delivery,
		createdAt:     createdAt,
		version:       version,
		isConstructed: true,
	}

	var statusErr error
	if err := status.Validate(); err != nil {
		statusErr = err
	} else {
		o.status = status
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSizeName(sizeName),
		o.setLines(lines),
		statusErr,
	); err != nil {
		return nil, err
	}

	if cancelReason != nil {
		reason := *cancelReason
		o.cancelReason = &reason
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) SizeName() *string {
	return o.sizeName
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// CancelReason is nil unless the order was cancelled.
func (o *Order) CancelReason() *string {
	return o.cancelReason
}

func (o *Order) Delivery() DeliveryInfo {
	return o.delivery
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Version() int {
	return o.version
}

// SetVersion records the version of the stored row after a repository write.
func (o *Order) SetVersion(version int) {
	o.version = version
}

// Events returns the recorded, unpublished domain events.
func (o *Order) Events() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), o.events...)
}

func (o *Order) ClearEvents() {
	o.events = nil
}

// Transition moves the order to target along the Status table.
//
// This method enforces the following business rules:
//   - The edge current -> target must exist; self transitions are rejected
//   - Cancelling requires a non-blank reason, stored verbatim
//
// Returns:
//   - nil on success, after recording StatusChanged
//   - error wrapping ErrInvalidTransition or ErrCancelReasonRequired
//
// Example:
//
//	if err := o.Transition(order.Cancelled, "customer gave up", time.Now()); err != nil {
//	    // Handle rejected transition
//	}
func (o *Order) Transition(target Status, reason string, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if next == Cancelled && strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredErrorWithCause("cancel reason", ErrCancelReasonRequired)
	}

	from := o.status
	o.status = next

	event := StatusChanged{OrderID: o.id, From: from, To: next, At: now}
	if next == Cancelled {
		o.cancelReason = &reason
		event.Reason = reason
	}
	o.record(event)

	return nil
}

// MarkPaid is the order side of a payment confirmation: CRIADO -> PAGO.
func (o *Order) MarkPaid(now time.Time) error {
	if o.status != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: order is %s, payment needs %s", ErrInvalidTransition, o.status, Created),
		)
	}
	return o.Transition(Paid, "", now)
}

func (o *Order) record(e kernel.DomainEvent) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setSizeName(name *string) error {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return errs.NewValueIsInvalidErrorWithCause("size name", errors.New("blank size name"))
	}
	o.sizeName = &trimmed
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = append([]Line(nil), lines...)
	return nil
}
