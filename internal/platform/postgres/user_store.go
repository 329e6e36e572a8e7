package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/platform/logger"
	"tasktrackr/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists if the unique index rejects the email.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	profile, err := marshalFields(user.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	query := `
		INSERT INTO users (email, profile, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = s.db.QueryRowContext(ctx, query, user.Email, profile, user.CreatedAt).
		Scan(&user.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", user.Email))
		return MapError(err)
	}

	log.Debug("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email))
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, profile, created_at
		FROM users
		WHERE email = $1
	`
	row := s.db.QueryRowContext(ctx, query, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, MapError(err)
	}

	return user, nil
}

// List implements store.UserStore.List
// Users come back in storage order; the contract does not promise one.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, email, profile, created_at FROM users`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// scanUser reads one user row into a domain.User.
func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user       domain.User
		rawProfile []byte
	)
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&rawProfile,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(rawProfile) > 0 {
		if err := json.Unmarshal(rawProfile, &user.Profile); err != nil {
			return nil, fmt.Errorf("failed to decode user profile: %w", err)
		}
	}
	if user.Profile == nil {
		user.Profile = map[string]any{}
	}

	return &user, nil
}
