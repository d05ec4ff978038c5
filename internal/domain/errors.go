// Package domain defines domain-specific errors and events.
// These represent business-level failures and are independent of any
// rendering or UI infrastructure.
package domain

import (
	"errors"
	"fmt"
)

// Common errors returned by the visual engine and its adapters.
var (
	// ErrNoSurface is returned when a drawable pixel surface cannot be
	// obtained. Nothing can render without one, so this is fatal.
	ErrNoSurface = errors.New("no drawable surface")

	// ErrSourceClosed is returned when a spectrum frame is requested
	// from a closed source.
	ErrSourceClosed = errors.New("spectrum source closed")

	// ErrShortFrame is returned when a destination buffer is too small
	// to hold one spectrum frame.
	ErrShortFrame = errors.New("destination smaller than one frame")

	// ErrBusClosed is returned when subscribing to a closed event bus.
	ErrBusClosed = errors.New("event bus closed")

	// ErrNotInitialized is returned when an operation is attempted on
	// an uninitialized component.
	ErrNotInitialized = errors.New("component not initialized")
)

// EngineError wraps a failure inside the visual engine with the
// operation that caused it.
type EngineError struct {
	Op      string // Operation that failed (e.g., "new", "resize")
	Message string // Error message
	Err     error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError creates a new EngineError.
func NewEngineError(op, message string, err error) *EngineError {
	return &EngineError{Op: op, Message: message, Err: err}
}

// SourceError wraps a failure in a spectrum source adapter.
type SourceError struct {
	Op      string // Operation that failed (e.g., "frame", "close")
	Source  string // Source name (e.g., "synthetic")
	Message string // Error message
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s.%s failed: %s", e.Source, e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(op, source, message string, err error) *SourceError {
	return &SourceError{Op: op, Source: source, Message: message, Err: err}
}
