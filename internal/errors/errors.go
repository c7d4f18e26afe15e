// Package errors defines the sentinel errors shared by the identity, entitlement and
// target application modules. Use cases wrap these sentinels with context and HTTP
// handlers map them to status codes through httputil.HandleErrorGin.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an identity or target application does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write collides with a unique attribute
	// (employee id, primary email, target application name).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput is returned for malformed or incomplete input, including a blank business role.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when the caller presents no role claim.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller's role claim lacks the admin capability.
	ErrForbidden = errors.New("forbidden")
)

// New creates a plain error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap annotates err with message and keeps it matchable with Is.
// Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
