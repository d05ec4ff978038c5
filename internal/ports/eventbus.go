// Package ports defines the interfaces between the visual engine
// shell's components. Adapters implement them; nothing in here depends
// on rendering or UI infrastructure.
package ports

import (
	"github.com/vibescope/vibescope/internal/domain"
)

// EventBus is the interface for publishing and subscribing to events.
// It decouples the presenter (which observes the engine) from anything
// reacting to pattern changes, such as the window title or logging.
//
// Thread-safety: implementations must be safe for concurrent publish
// and subscribe calls.
type EventBus interface {
	// Publish delivers an event to all subscribers of its type.
	// Handlers run synchronously in subscription order; they must be
	// quick or dispatch to a background goroutine themselves.
	Publish(event domain.Event)

	// Subscribe registers a handler for events of the given type and
	// returns a unique subscription ID. The same handler can be
	// registered more than once, once per ID.
	Subscribe(eventType domain.EventType, handler domain.EventHandler) domain.SubscriptionID

	// Unsubscribe removes a previously registered handler. Unknown or
	// already-removed IDs are a no-op.
	Unsubscribe(id domain.SubscriptionID)

	// SubscribeAll registers a handler that receives every event,
	// useful for logging and debugging.
	SubscribeAll(handler domain.EventHandler) domain.SubscriptionID

	// HasSubscribers reports whether anyone listens for the given
	// event type, so publishers can skip building expensive events.
	HasSubscribers(eventType domain.EventType) bool

	// Close shuts the bus down. Publishes after Close are dropped.
	Close() error
}
