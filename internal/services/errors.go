package services

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidState    = errors.New("invalid state transition")
	ErrDuplicate       = errors.New("duplicate record")

	// ErrConcurrency means the receipt issuance could not be completed
	// atomically within the retry budget. Callers retry the full call;
	// a previously observed counter value is never reused.
	ErrConcurrency = errors.New("receipt issuance conflict, please retry")

	// ErrNoSessionsLeft means the PT package has no remaining sessions
	ErrNoSessionsLeft = errors.New("no sessions left on this package")
)

// ValidationError marks malformed or out-of-range input. It is never
// partially applied; the caller fixes the input and retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PartialFailure reports that the business entity was created or updated
// but the follow-up receipt could not be issued. The entity is left
// intact; handlers surface this as success with a warning rather than
// rolling back.
type PartialFailure struct {
	Entity string
	Err    error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%s saved but receipt could not be generated: %v", e.Entity, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}

// IsPartialFailure reports whether err is a PartialFailure
func IsPartialFailure(err error) bool {
	var pf *PartialFailure
	return errors.As(err, &pf)
}
