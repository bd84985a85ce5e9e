package order

import (
	"time"

	"lunchbox/internal/core/domain/model/kernel"
)

const (
	EventOrderCreated  = "order.created"
	EventStatusChanged = "order.status_changed"
)

// OrderCreated is recorded when an order is assembled.
type OrderCreated struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Total      kernel.Money
	At         time.Time
}

func (e OrderCreated) EventName() string {
	return EventOrderCreated
}

func (e OrderCreated) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e OrderCreated) OccurredAt() time.Time {
	return e.At
}

// Payload is the JSON body published for the event.
func (e OrderCreated) Payload() map[string]any {
	return map[string]any{
		"order_id":    e.OrderID.String(),
		"customer_id": e.CustomerID.String(),
		"total":       e.Total.String(),
	}
}

// StatusChanged is recorded by every applied transition.
type StatusChanged struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	Reason  string
	At      time.Time
}

func (e StatusChanged) EventName() string {
	return EventStatusChanged
}

func (e StatusChanged) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}

func (e StatusChanged) Payload() map[string]any {
	p := map[string]any{
		"order_id": e.OrderID.String(),
		"from":     e.From.String(),
		"to":       e.To.String(),
	}
	if e.Reason != "" {
		p["reason"] = e.Reason
	}
	return p
}
