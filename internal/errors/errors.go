// Package errors defines the base error taxonomy shared by the protection
// pipeline, its HTTP surface and its metrics.
package errors

import (
	"errors"
	"fmt"
)

// Base errors. Domain packages wrap these so boundaries can classify failures
// without knowing the domain error set.
var (
	// ErrInvalidInput indicates configuration or request data that fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadRequest indicates a token that cannot be accepted as-is: malformed,
	// altered, forged or bound to another modifier.
	ErrBadRequest = errors.New("bad request")

	// ErrUnavailable indicates the protector can no longer serve requests.
	ErrUnavailable = errors.New("unavailable")
)

// Kind is the coarse class of an error as seen by callers.
type Kind string

const (
	KindNone        Kind = ""
	KindRejected    Kind = "rejected"
	KindInvalid     Kind = "invalid"
	KindUnavailable Kind = "unavailable"
	KindInternal    Kind = "internal"
)

// KindOf classifies err. Rejected takes precedence over invalid so a token
// failure that also carries an input cause is still reported as rejected.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrBadRequest):
		return KindRejected
	case errors.Is(err, ErrInvalidInput):
		return KindInvalid
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	default:
		return KindInternal
	}
}

// Wrap adds message as context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
