// Package domain defines events for the event-driven shell.
// Events let the UI react to pattern changes without the engine
// knowing about any subscriber.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Pattern lifecycle events
	EventPatternChanged      EventType = "pattern.changed"
	EventTransitionStarted   EventType = "transition.started"
	EventTransitionCompleted EventType = "transition.completed"

	// Source events
	EventSourceStopped EventType = "source.stopped"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// PatternChangedEvent is published when the active pattern commits.
type PatternChangedEvent struct {
	baseEvent
	Pattern  string
	Previous string
}

// Type returns the event type.
func (e PatternChangedEvent) Type() EventType { return EventPatternChanged }

// NewPatternChangedEvent creates a PatternChangedEvent.
func NewPatternChangedEvent(pattern, previous string) PatternChangedEvent {
	return PatternChangedEvent{baseEvent: newBaseEvent(), Pattern: pattern, Previous: previous}
}

// TransitionStartedEvent is published when a cross-fade begins.
type TransitionStartedEvent struct {
	baseEvent
	From string
	To   string
}

// Type returns the event type.
func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// NewTransitionStartedEvent creates a TransitionStartedEvent.
func NewTransitionStartedEvent(from, to string) TransitionStartedEvent {
	return TransitionStartedEvent{baseEvent: newBaseEvent(), From: from, To: to}
}

// TransitionCompletedEvent is published when a cross-fade commits.
type TransitionCompletedEvent struct {
	baseEvent
	Pattern string
}

// Type returns the event type.
func (e TransitionCompletedEvent) Type() EventType { return EventTransitionCompleted }

// NewTransitionCompletedEvent creates a TransitionCompletedEvent.
func NewTransitionCompletedEvent(pattern string) TransitionCompletedEvent {
	return TransitionCompletedEvent{baseEvent: newBaseEvent(), Pattern: pattern}
}

// SourceStoppedEvent is published when the spectrum source shuts down.
type SourceStoppedEvent struct {
	baseEvent
	Reason string
}

// Type returns the event type.
func (e SourceStoppedEvent) Type() EventType { return EventSourceStopped }

// NewSourceStoppedEvent creates a SourceStoppedEvent.
func NewSourceStoppedEvent(reason string) SourceStoppedEvent {
	return SourceStoppedEvent{baseEvent: newBaseEvent(), Reason: reason}
}
