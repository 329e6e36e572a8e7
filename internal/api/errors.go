package api

import (
	"errors"
	"net/http"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/service"
	"tasktrackr/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, service.ErrOwnerRequired),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyTaskOwner),
		errors.Is(err, domain.ErrEmptyUserEmail),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors. The duplicate-user path never reaches here (it
	// is a silent no-op in the service), so this covers future unique
	// constraints only.
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrOwnerRequired),
		errors.Is(err, domain.ErrEmptyTaskOwner):
		return "User email is required"

	case errors.Is(err, domain.ErrEmptyUserEmail):
		return "User email is required"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid task ID"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	default:
		return "An unexpected error occurred"
	}
}
