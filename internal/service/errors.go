// Package service implements the business rules of the task tracker:
// owner-required validation, creation stamping, owner-scoped mutation,
// the silent duplicate-user skip, and the reorder fan-out.
package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the service layer.
var (
	// ErrOwnerRequired indicates that a task operation was attempted
	// without the required addedBy owner email.
	ErrOwnerRequired = errors.New("user email is required")
)

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "reorder_tasks")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
