package checkpoint

import (
	"errors"
	"fmt"
)

// ErrFormat is the class of all stream format errors. A format error aborts
// the restore; it is never silently ignored.
var ErrFormat = errors.New("checkpoint: format error")

// ErrTagMismatch matches tag check failures via errors.Is.
var ErrTagMismatch = errors.New("checkpoint: tag mismatch")

// TagMismatchError reports a failed Tag check during a restore.
type TagMismatchError struct {
	Expected int
	Got      int
}

// Error implements error.
func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("checkpoint: tag mismatch: expected %d, stream has %d", e.Expected, e.Got)
}

// Is matches ErrTagMismatch and ErrFormat.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch || target == ErrFormat
}

// formatErr wraps a low-level decode problem as a format error.
func formatErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrFormat, op, err)
}
