package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/store"
)

// TaskOrder pairs a task ID with its new display order for reordering.
type TaskOrder struct {
	ID    uuid.UUID
	Order int
}

// TaskService provides task-related operations.
type TaskService interface {
	// CreateTask validates the owner, stamps order and creation time,
	// and persists a new task carrying the passthrough fields.
	// Returns ErrOwnerRequired if addedBy is empty.
	CreateTask(ctx context.Context, addedBy string, fields map[string]any) (*domain.Task, error)

	// ListTasks returns the owner's tasks sorted by order ascending.
	// Returns ErrOwnerRequired if addedBy is empty.
	ListTasks(ctx context.Context, addedBy string) ([]*domain.Task, error)

	// GetTask fetches a task by ID alone. Fetch-by-id is public within
	// the system; only mutation is owner-scoped.
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// UpdateTask applies a field-merge patch to the task matching both
	// id and addedBy. The patch's order value is coerced to an int
	// (missing or non-numeric becomes 0) and ownership cannot be
	// reassigned through the patch. A zero-match update is reported
	// through the result counts, not an error.
	UpdateTask(
		ctx context.Context,
		id uuid.UUID,
		addedBy string,
		patch map[string]any,
	) (store.UpdateResult, error)

	// DeleteTask removes the task matching both id and addedBy.
	// Returns store.ErrTaskNotFound if nothing matched.
	DeleteTask(ctx context.Context, id uuid.UUID, addedBy string) error

	// ReorderTasks dispatches one order-only update per pair
	// concurrently and waits for all of them. There is no owner filter
	// and no rollback: updates applied before a failure stay applied.
	ReorderTasks(ctx context.Context, pairs []TaskOrder) error
}

// taskService is the production TaskService backed by a TaskStore.
type taskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store.
// If logger is nil, a default logger will be used.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}
}

func (s *taskService) CreateTask(
	ctx context.Context,
	addedBy string,
	fields map[string]any,
) (*domain.Task, error) {
	if addedBy == "" {
		return nil, ErrOwnerRequired
	}

	task, err := domain.NewTask(addedBy, fields)
	if err != nil {
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("added_by", addedBy))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, addedBy string) ([]*domain.Task, error) {
	if addedBy == "" {
		return nil, ErrOwnerRequired
	}

	tasks, err := s.tasks.ListByOwner(ctx, addedBy)
	if err != nil {
		s.logger.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("added_by", addedBy))
		return nil, NewTaskServiceError("list_tasks", "failed to fetch tasks", err)
	}

	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	addedBy string,
	patch map[string]any,
) (store.UpdateResult, error) {
	// The order value is always coerced, matching the create-time
	// default: a patch without a numeric order resets it to 0.
	order := domain.CoerceOrder(patch["order"])

	// Interpreted fields never ride along in the merge document. In
	// particular the owner is forced to the filter value, so a caller
	// cannot reassign ownership through the patch body.
	merge := make(map[string]any, len(patch))
	for k, v := range patch {
		switch k {
		case "id", "order", "addedBy":
			continue
		}
		merge[k] = v
	}

	result, err := s.tasks.Update(ctx, id, addedBy, order, merge)
	if err != nil {
		s.logger.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.String("added_by", addedBy))
		return store.UpdateResult{}, NewTaskServiceError("update_task", "failed to update task", err)
	}

	return result, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID, addedBy string) error {
	if err := s.tasks.Delete(ctx, id, addedBy); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.String("task_id", id.String()),
				slog.String("added_by", addedBy))
		}
		return err
	}
	return nil
}

func (s *taskService) ReorderTasks(ctx context.Context, pairs []TaskOrder) error {
	// Fan-out/fan-in: one update per pair, all concurrent, first error
	// cancels the group context. Completed updates are not rolled back.
	g, ctx := errgroup.WithContext(ctx)
	for _, pair := range pairs {
		pair := pair
		g.Go(func() error {
			return s.tasks.SetOrder(ctx, pair.ID, pair.Order)
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to reorder tasks",
			slog.String("error", err.Error()),
			slog.Int("count", len(pairs)))
		return NewTaskServiceError("reorder_tasks", "failed to reorder tasks", err)
	}

	return nil
}
