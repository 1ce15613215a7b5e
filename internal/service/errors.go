package service

import (
	"errors"
	"fmt"
)

var (
	// ErrExternalService is returned when the distance collaborator fails.
	ErrExternalService = errors.New("external service error")
	// ErrNoValidResponse is returned when the collaborator's reply
	// contains no usable distance.
	ErrNoValidResponse = errors.New("no valid response")
	// ErrNoRoutes is returned when an export is requested for a week
	// without records.
	ErrNoRoutes = errors.New("no routes for week")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
