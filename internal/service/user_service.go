package service

import (
	"context"
	"errors"
	"log/slog"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// CreateUser inserts a user unless one with the same email already
	// exists. Duplicate creation is a silent no-op: the returned user
	// is nil and created is false, with no error. When a user is
	// inserted, the stored user is returned with created true.
	CreateUser(ctx context.Context, email string, profile map[string]any) (user *domain.User, created bool, err error)

	// ListUsers returns every user record in storage order.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// userService is the production UserService backed by a UserStore.
type userService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given store.
// If logger is nil, a default logger will be used.
func NewUserService(users store.UserStore, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		users:  users,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

func (s *userService) CreateUser(
	ctx context.Context,
	email string,
	profile map[string]any,
) (*domain.User, bool, error) {
	user, err := domain.NewUser(email, profile)
	if err != nil {
		return nil, false, NewTaskServiceError("create_user", "invalid user", err)
	}

	// Check-then-insert keeps the common duplicate path a single read;
	// the unique index on email closes the race underneath it.
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !store.IsNotFoundError(err) {
		s.logger.Error("failed to look up user",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, false, NewTaskServiceError("create_user", "failed to look up user", err)
	}
	if existing != nil {
		s.logger.Debug("duplicate user creation skipped",
			slog.String("email", email))
		return nil, false, nil
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// A concurrent create won the race; same silent skip.
			return nil, false, nil
		}
		s.logger.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, false, NewTaskServiceError("create_user", "failed to save user", err)
	}

	return user, true, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_users", "failed to fetch users", err)
	}
	return users, nil
}
