package overlay

import (
	"errors"
	"fmt"
)

// ErrMonitorUnavailable means placement fell back to DefaultPosition. It is
// logged, never returned by the command surface.
var ErrMonitorUnavailable = errors.New("primary monitor unavailable")

// WindowOperationError reports a failed window-system call
type WindowOperationError struct {
	Op  string
	Err error
}

func (e *WindowOperationError) Error() string {
	return fmt.Sprintf("overlay %s failed: %v", e.Op, e.Err)
}

func (e *WindowOperationError) Unwrap() error { return e.Err }

func opError(op string, err error) error {
	return &WindowOperationError{Op: op, Err: err}
}
