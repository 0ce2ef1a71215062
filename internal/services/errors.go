package services

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion is returned when the model answered without any text.
var ErrEmptyCompletion = errors.New("no text content in response")

// ValidationError rejects a request before any outbound call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ServiceError wraps a transport or service failure of an external
// dependency. It aborts the whole batch.
type ServiceError struct {
	Op    string
	Cause error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return e.Op
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
