package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserEmail = errors.New("user email cannot be empty")
)

// User represents a user profile record. The service only interprets
// the email, which is the lookup key for duplicate detection; any other
// profile fields supplied by the client are kept in Profile untouched.
type User struct {
	// ID is assigned by the storage layer on insert.
	ID uuid.UUID

	// Email is the lookup key. Duplicate creation is a silent no-op.
	Email string

	// Profile holds all additional client-supplied profile fields,
	// opaque to the service.
	Profile map[string]any

	// CreatedAt is the creation time stamped by the service at insert.
	CreatedAt time.Time
}

// NewUser creates a new User with the given email and passthrough
// profile fields. The ID is left unset for the storage layer to assign.
// Returns an error if validation fails.
func NewUser(email string, profile map[string]any) (*User, error) {
	user := &User{
		Email:     email,
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyUserEmail
	}
	return nil
}
