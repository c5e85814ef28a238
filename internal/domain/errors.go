package domain

import (
	"errors"
	"fmt"
)

// Error is a domain error carrying a stable code that adapters map to
// transport statuses and translated messages.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Domain errors.
var (
	ErrValidation               = &Error{Code: "validation", Message: "invalid request"}
	ErrEventNotFound            = &Error{Code: "event_not_found", Message: "event not found"}
	ErrEnrollmentNotFound       = &Error{Code: "enrollment_not_found", Message: "enrollment not found"}
	ErrUserNotFound             = &Error{Code: "user_not_found", Message: "user not found"}
	ErrDuplicateEnrollment      = &Error{Code: "duplicate_enrollment", Message: "already signed up for this event"}
	ErrAlreadyCancelled         = &Error{Code: "already_cancelled", Message: "enrollment is already cancelled"}
	ErrCancellationWindowClosed = &Error{Code: "cancellation_window_closed", Message: "cancellation deadline has passed"}
	ErrConcurrentConflict       = &Error{Code: "concurrent_conflict", Message: "concurrent update, try again"}
)

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Code returns the domain code carried by err, or "" when err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
