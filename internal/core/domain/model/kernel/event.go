package kernel

import "time"

// DomainEvent is something an aggregate records while it changes. Events are
// published by the unit of work once the surrounding transaction commits.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
