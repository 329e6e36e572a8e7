package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/platform/logger"
	"tasktrackr/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts the task as a document row and assigns the generated ID.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	fields, err := marshalFields(task.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode task fields: %w", err)
	}

	query := `
		INSERT INTO tasks (added_by, task_order, fields, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = s.db.QueryRowContext(
		ctx,
		query,
		task.AddedBy,
		task.Order,
		fields,
		task.Timestamp,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("added_by", task.AddedBy))
		return MapError(err)
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("added_by", task.AddedBy))
	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner
// Results come back sorted by order ascending; creation time breaks
// ties so freshly created tasks keep a stable position.
func (s *PostgresTaskStore) ListByOwner(
	ctx context.Context,
	addedBy string,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, added_by, task_order, fields, created_at
		FROM tasks
		WHERE added_by = $1
		ORDER BY task_order ASC, created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, addedBy)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("added_by", addedBy))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
// Fetch-by-id is deliberately not owner-scoped; only mutation is.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, added_by, task_order, fields, created_at
		FROM tasks
		WHERE id = $1
	`
	row := s.db.QueryRowContext(ctx, query, id)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, MapError(err)
	}

	return task, nil
}

// Update implements store.TaskStore.Update
// It merges the patch into the JSONB fields column and sets the order,
// filtered by both id and owner. No upsert: a zero-match update
// reports zero counts with a nil error.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	id uuid.UUID,
	addedBy string,
	order int,
	patch map[string]any,
) (store.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fields, err := marshalFields(patch)
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to encode task patch: %w", err)
	}

	query := `
		UPDATE tasks
		SET task_order = $1, fields = fields || $2::jsonb
		WHERE id = $3 AND added_by = $4
	`
	result, err := s.db.ExecContext(ctx, query, order, fields, id, addedBy)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.String("added_by", addedBy))
		return store.UpdateResult{}, MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to get rows affected: %w", err)
	}

	// Postgres rewrites the whole row, so matched and modified agree.
	return store.UpdateResult{Matched: rows, Modified: rows}, nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if no task matched both id and owner.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID, addedBy string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1 AND added_by = $2`
	result, err := s.db.ExecContext(ctx, query, id, addedBy)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.String("added_by", addedBy))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	log.Debug("task deleted",
		slog.String("task_id", id.String()),
		slog.String("added_by", addedBy))
	return nil
}

// SetOrder implements store.TaskStore.SetOrder
// Reordering is not owner-scoped and a missing id is a no-op.
func (s *PostgresTaskStore) SetOrder(ctx context.Context, id uuid.UUID, order int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE tasks SET task_order = $1 WHERE id = $2`
	if _, err := s.db.ExecContext(ctx, query, order, id); err != nil {
		log.Error("failed to set task order",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.Int("order", order))
		return MapError(err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row into a domain.Task.
func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task      domain.Task
		rawFields []byte
	)
	if err := row.Scan(
		&task.ID,
		&task.AddedBy,
		&task.Order,
		&rawFields,
		&task.Timestamp,
	); err != nil {
		return nil, err
	}

	if len(rawFields) > 0 {
		if err := json.Unmarshal(rawFields, &task.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode task fields: %w", err)
		}
	}
	if task.Fields == nil {
		task.Fields = map[string]any{}
	}

	return &task, nil
}

// marshalFields encodes a passthrough field map for a JSONB column,
// treating nil as the empty document.
func marshalFields(fields map[string]any) ([]byte, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	return json.Marshal(fields)
}
