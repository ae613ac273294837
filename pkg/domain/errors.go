package domain

import (
	"errors"
	"fmt"
)

// ErrNothingToUndo is returned by GoBack when the session log is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrNodeNotFound is returned when a node ID cannot be resolved in the graph.
var ErrNodeNotFound = errors.New("node not found")

// ValidationError signals missing or invalid user input (no answer selected,
// empty required field). It is recoverable: session state is unchanged and
// the caller may retry.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError signals a decision graph inconsistency observed at
// runtime (dangling edge, edge with neither destination). It is a hard
// data-integrity failure: the engine never guesses a destination.
type ConfigurationError struct {
	NodeID string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("graph configuration: %s", e.Reason)
	}
	return fmt.Sprintf("graph configuration: node %q: %s", e.NodeID, e.Reason)
}

// PersistenceError wraps a durable store failure. On write failure during
// finalization the session stays in its current phase so the caller can
// retry or abandon.
type PersistenceError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("history store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
