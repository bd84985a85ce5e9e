package ports

import (
	"context"

	"lunchbox/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to the outside world. It is called
// only after the unit of work that produced the events has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
