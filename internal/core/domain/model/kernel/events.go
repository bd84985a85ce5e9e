package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a state change and
// published after the surrounding unit of work commits.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
	// Payload is the event body handed to publishers.
	Payload() map[string]any
}
