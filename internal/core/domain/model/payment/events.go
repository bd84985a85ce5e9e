package payment

import (
	"time"

	"lunchbox/internal/core/domain/model/kernel"
)

const EventStatusChanged = "payment.status_changed"

// StatusChanged is recorded when a payment is confirmed or refused.
type StatusChanged struct {
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	To        Status
	Reason    string
	At        time.Time
}

func (e StatusChanged) EventName() string {
	return EventStatusChanged
}

func (e StatusChanged) AggregateID() kernel.UUID {
	return e.PaymentID
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}

func (e StatusChanged) Payload() map[string]any {
	p := map[string]any{
		"payment_id": e.PaymentID.String(),
		"order_id":   e.OrderID.String(),
		"to":         e.To.String(),
	}
	if e.Reason != "" {
		p["reason"] = e.Reason
	}
	return p
}
