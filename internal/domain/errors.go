package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks widget lookups for ids the live model no longer holds
var ErrNotFound = errors.New("not found")

// ImportError describes why an uploaded document was rejected. The
// authoritative list is never touched when one of these is returned.
type ImportError struct {
	Op      string // "read", "parse", "validate"
	Index   int    // element index for validation failures, -1 otherwise
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("import %s [task %d]: %s", e.Op, e.Index, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("import %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("import %s: %v", e.Op, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// WidgetError represents a failure reported by the chart widget
type WidgetError struct {
	Op     string
	TaskID string
	Err    error
}

func (e *WidgetError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("widget %s [%s]: %v", e.Op, e.TaskID, e.Err)
	}
	return fmt.Sprintf("widget %s: %v", e.Op, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}
