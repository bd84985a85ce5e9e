package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/pkg/errs"
)

var (
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

	// ErrPaymentRefused is wrapped when confirming a refused payment.
	ErrPaymentRefused = errors.New("payment was refused")

	// ErrPaymentConfirmed is wrapped when refusing a confirmed payment.
	ErrPaymentConfirmed = errors.New("payment is already confirmed")

	ErrPaymentNotPending = errors.New("payment is not pending")
)

// Payment is the one payment of an order. Version is the optimistic
// concurrency token of the stored row.
type Payment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	amount      kernel.Money
	method      Method
	status      Status
	reference   string
	note        string
	pixTxID     string
	cardPresent bool
	confirmedAt *time.Time
	createdAt   time.Time
	version     int

	events        []kernel.DomainEvent
	isConstructed bool
}

// NewPayment registers a pending payment.
func NewPayment(id, orderID kernel.UUID, amount kernel.Money, method Method, now time.Time) (*Payment, error) {
	p := &Payment{
		amount:        amount,
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePaymentParams carries the stored state of a payment.
type RestorePaymentParams struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Amount      kernel.Money
	Method      Method
	Status      Status
	Reference   string
	Note        string
	PixTxID     string
	CardPresent bool
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	Version     int
}

func RestorePayment(rp RestorePaymentParams) (*Payment, error) {
	p, err := NewPayment(rp.ID, rp.OrderID, rp.Amount, rp.Method, rp.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := rp.Status.Validate(); err != nil {
		return nil, err
	}

	p.status = rp.Status
	p.reference = rp.Reference
	p.note = rp.Note
	p.pixTxID = rp.PixTxID
	p.cardPresent = rp.CardPresent
	p.confirmedAt = rp.ConfirmedAt
	p.version = rp.Version
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) Reference() string {
	return p.reference
}

// Note holds customer notes or the refusal reason.
func (p *Payment) Note() string {
	return p.note
}

func (p *Payment) PixTxID() string {
	return p.pixTxID
}

func (p *Payment) CardPresent() bool {
	return p.cardPresent
}

func (p *Payment) ConfirmedAt() *time.Time {
	return p.confirmedAt
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) Version() int {
	return p.version
}

// SetVersion records the version of the stored row after a repository write.
func (p *Payment) SetVersion(version int) {
	p.version = version
}

func (p *Payment) Events() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), p.events...)
}

func (p *Payment) ClearEvents() {
	p.events = nil
}

// Details are the editable fields of a pending payment. Nil and blank values
// leave the current value in place.
type Details struct {
	Amount      *kernel.Money
	Method      *Method
	Reference   string
	Note        string
	PixTxID     string
	CardPresent *bool
}

// Update applies d. Only pending payments can be edited.
func (p *Payment) Update(d Details) error {
	if p.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("payment",
			fmt.Errorf("%w: it is %s", ErrPaymentNotPending, p.status))
	}

	if d.Method != nil {
		if err := p.setMethod(*d.Method); err != nil {
			return err
		}
	}
	if d.Amount != nil {
		p.amount = *d.Amount
	}
	if d.CardPresent != nil {
		p.cardPresent = *d.CardPresent
	}
	if v := strings.TrimSpace(d.Reference); v != "" {
		p.reference = v
	}
	if v := strings.TrimSpace(d.Note); v != "" {
		p.note = v
	}
	if v := strings.TrimSpace(d.PixTxID); v != "" {
		p.pixTxID = v
	}
	return nil
}

// Confirm moves a pending payment to CONFIRMADO and stamps the time. It
// reports false when the payment already was confirmed.
func (p *Payment) Confirm(now time.Time) (bool, error) {
	switch p.status {
	case Confirmed:
		return false, nil
	case Refused:
		return false, errs.NewValueIsInvalidErrorWithCause("payment", ErrPaymentRefused)
	}

	p.status = Confirmed
	at := now
	p.confirmedAt = &at
	p.events = append(p.events, StatusChanged{PaymentID: p.id, OrderID: p.orderID, To: Confirmed, At: now})
	return true, nil
}

// Refuse moves a pending payment to RECUSADO. A non-blank reason replaces the
// note. It reports false when the payment already was refused.
func (p *Payment) Refuse(reason string, now time.Time) (bool, error) {
	switch p.status {
	case Refused:
		return false, nil
	case Confirmed:
		return false, errs.NewValueIsInvalidErrorWithCause("payment", ErrPaymentConfirmed)
	}

	p.status = Refused
	if r := strings.TrimSpace(reason); r != "" {
		p.note = r
	}
	p.events = append(p.events, StatusChanged{PaymentID: p.id, OrderID: p.orderID, To: Refused, Reason: p.note, At: now})
	return true, nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	p.orderID = id
	return nil
}

func (p *Payment) setMethod(m Method) error {
	if err := m.Validate(); err != nil {
		return err
	}
	p.method = m
	return nil
}
