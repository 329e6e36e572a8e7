package store

import (
	"context"

	"github.com/google/uuid"

	"tasktrackr/internal/domain"
)

// UpdateResult reports how many records an update matched and modified.
// A zero-match update is not an error; callers inspect the counts to
// detect a missing or foreign task.
type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// The task must already carry its owner, order, and timestamp.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner retrieves every task whose AddedBy equals addedBy,
	// sorted by order ascending with creation time breaking ties.
	ListByOwner(ctx context.Context, addedBy string) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID. Fetch-by-id is not
	// owner-scoped; mutation is.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies a field-merge update to the task matching both id
	// and addedBy: fields present in the patch overwrite, others are
	// preserved. The order column is always set to order. No upsert;
	// a zero-match update returns counts of zero and a nil error.
	Update(
		ctx context.Context,
		id uuid.UUID,
		addedBy string,
		order int,
		fields map[string]any,
	) (UpdateResult, error)

	// Delete removes the task matching both id and addedBy.
	// Returns ErrTaskNotFound if no task matched.
	Delete(ctx context.Context, id uuid.UUID, addedBy string) error

	// SetOrder sets only the order of the task with the given id, with
	// no owner filter. A missing id is a no-op, not an error.
	SetOrder(ctx context.Context, id uuid.UUID, order int) error
}
