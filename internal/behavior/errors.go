package behavior

import (
	"errors"
	"fmt"

	"github.com/harrison/telegram-analyzer/internal/display"
)

var (
	// ErrInputNotFound means the input path is missing or is not the kind of
	// entry the behavior reads.
	ErrInputNotFound = errors.New("input not found")
	// ErrMalformedDocument means a JSON input is not valid JSON or its top
	// level is not an array where one is required.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrValidation means output options were rejected before any I/O.
	ErrValidation = display.ErrValidation
	// ErrOutputWrite means the report directory or file could not be written.
	ErrOutputWrite = display.ErrOutputWrite
)

// BatchError reports which behavior stopped a batch.
type BatchError struct {
	Index int    // Position of the failing behavior (1-based)
	Name  string // Command name of the failing behavior
	Err   error  // Error returned by the behavior
}

// Error implements the error interface for BatchError.
func (e *BatchError) Error() string {
	return fmt.Sprintf("stopped at behavior %d (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the behavior's error so errors.Is works on the taxonomy.
func (e *BatchError) Unwrap() error {
	return e.Err
}
