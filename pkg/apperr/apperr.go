// Package apperr defines the sentinel errors shared by every layer. Services
// and repositories wrap them with %w so callers can classify a failure with
// errors.Is without parsing messages; handlers translate each kind into one
// HTTP status.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input: an unknown time slot, a missing
	// field, an id that does not parse.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks a role or ownership mismatch.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks an unknown id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an illegal transition, such as deleting a
	// reservation already bundled into an order or approving an order that
	// already reached a terminal state.
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyOrder marks a submit with zero pending reservations.
	ErrEmptyOrder = errors.New("no pending reservations")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
