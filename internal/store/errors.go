package store

import (
	"errors"
	"fmt"
)

// ErrEmptyDescription is returned by Add when the description is blank
// after trimming.
var ErrEmptyDescription = errors.New("task description cannot be empty")

// NotFoundError reports an operation on a task ID that is not in the
// store.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.ID)
}

// ParseError reports a task file line whose ID field is not a number.
// Line is 1-based.
type ParseError struct {
	Line  int
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid task ID %q in line %d", e.Value, e.Line)
}
