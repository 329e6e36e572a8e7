package domain

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskOwner = errors.New("task owner email cannot be empty")
)

// Task represents a single task record owned by a user. The service
// interprets the owner, ordering, and creation time; every other field
// supplied by the client lives in Fields and is passed through
// verbatim.
type Task struct {
	// ID is assigned by the storage layer on insert and is stable for
	// the lifetime of the record.
	ID uuid.UUID

	// AddedBy is the owner's email. It is set once at creation and acts
	// as the tenant boundary for update and delete.
	AddedBy string

	// Order is the client-controlled display position, default 0.
	Order int

	// Timestamp is the creation time stamped by the service at insert.
	Timestamp time.Time

	// Fields holds all additional client-supplied fields (title, status,
	// and so on), opaque to the service.
	Fields map[string]any
}

// NewTask creates a new Task owned by addedBy carrying the given
// passthrough fields. The task is stamped with order 0 and the current
// time; the ID is left unset for the storage layer to assign.
// Returns an error if validation fails.
func NewTask(addedBy string, fields map[string]any) (*Task, error) {
	task := &Task{
		AddedBy:   addedBy,
		Order:     0,
		Timestamp: time.Now().UTC(),
		Fields:    fields,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.AddedBy == "" {
		return ErrEmptyTaskOwner
	}
	return nil
}

// CoerceOrder converts a client-supplied order value to an int.
// JSON numbers arrive as float64 and are truncated; numeric strings are
// parsed. Anything missing or non-numeric coerces to 0.
func CoerceOrder(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}
