package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateProfile is the umbrella for every uniqueness violation.
	// The three specific duplicate errors below wrap it, so callers that
	// only care about "some unique key is taken" can match this one.
	ErrDuplicateProfile = errors.New("profile with the requested identifiers already exists")

	ErrDuplicateEmail  = fmt.Errorf("email already in use: %w", ErrDuplicateProfile)
	ErrDuplicateUserID = fmt.Errorf("user id already has a profile: %w", ErrDuplicateProfile)
	ErrDuplicateDni    = fmt.Errorf("dni already in use: %w", ErrDuplicateProfile)

	ErrInvalidData     = errors.New("invalid data provided for profile operations")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnhandled       = errors.New("unexpected error")
)

// ValidationError reports which field failed command or query construction.
// It wraps ErrInvalidData so errors.Is keeps working at every layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
