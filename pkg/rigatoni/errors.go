package rigatoni

import (
	"errors"
	"fmt"
)

// ErrEngineClosed indicates an operation was submitted to an engine after
// Close. No queued or in-flight operation is affected by Close; only new
// submissions fail.
var ErrEngineClosed = errors.New("dispatch engine is closed")

// DispatchError represents a screen production failure during dispatch.
// Refusals (unknown route, veto, failed precondition) are not errors - they
// are silent no-ops observable through the Delegate. A DispatchError means
// the caller asked for a navigation that truly will not happen: the factory
// could not produce a screen, and the host was left untouched.
type DispatchError struct {
	Op    string // Operation that failed (e.g., "dispatch")
	Route string // Raw route string being dispatched
	Err   error  // Underlying error
}

func (e *DispatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rigatoni: %s %s: %v", e.Op, e.Route, e.Err)
	}
	return fmt.Sprintf("rigatoni: %s %s", e.Op, e.Route)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// IsDispatchError checks if an error is a dispatch error.
func IsDispatchError(err error) bool {
	var dispatchErr *DispatchError
	return errors.As(err, &dispatchErr)
}
