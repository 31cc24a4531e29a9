package ports

import "context"

const (
	// EventEnvironmentChanged is emitted when a new environment snapshot is
	// delivered to the orchestrator.
	EventEnvironmentChanged = "environment.changed"
	// EventPlanComputed is emitted after a recomputation pass succeeds.
	EventPlanComputed = "plan.computed"
	// EventPlanFailed is emitted when a recomputation pass hits invalid input.
	EventPlanFailed = "plan.failed"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler ran. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned so
// publishers can log them and continue with the remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}
