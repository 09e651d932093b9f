package app

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrInternalError = errors.New("internal error")

	ErrStoreWriteFailed           = errors.New("store write failed")
	ErrNotificationDenied         = errors.New("notification permission denied")
	ErrNotificationScheduleFailed = errors.New("notification schedule failed")
)

type ValidationError struct {
	Field   string
	Message string
	// Err is the domain error behind the failure, if any.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}

	return []error{ErrValidation, e.Err}
}

func NewValidationErrorFrom(field string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: err.Error(),
		Err:     err,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

// IsNotificationError reports a failure that happened after the event was
// stored. The event stays in the store.
func IsNotificationError(err error) bool {
	return errors.Is(err, ErrNotificationDenied) || errors.Is(err, ErrNotificationScheduleFailed)
}
