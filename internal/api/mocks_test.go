package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/service"
	"tasktrackr/internal/store"
)

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn   func(ctx context.Context, addedBy string, fields map[string]any) (*domain.Task, error)
	ListTasksFn    func(ctx context.Context, addedBy string) ([]*domain.Task, error)
	GetTaskFn      func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateTaskFn   func(ctx context.Context, id uuid.UUID, addedBy string, patch map[string]any) (store.UpdateResult, error)
	DeleteTaskFn   func(ctx context.Context, id uuid.UUID, addedBy string) error
	ReorderTasksFn func(ctx context.Context, pairs []service.TaskOrder) error
}

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	addedBy string,
	fields map[string]any,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, addedBy, fields)
	}
	if addedBy == "" {
		return nil, service.ErrOwnerRequired
	}
	return domain.NewTask(addedBy, fields)
}

func (m *MockTaskService) ListTasks(ctx context.Context, addedBy string) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, addedBy)
	}
	if addedBy == "" {
		return nil, service.ErrOwnerRequired
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	addedBy string,
	patch map[string]any,
) (store.UpdateResult, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, addedBy, patch)
	}
	return store.UpdateResult{}, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID, addedBy string) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id, addedBy)
	}
	return nil
}

func (m *MockTaskService) ReorderTasks(ctx context.Context, pairs []service.TaskOrder) error {
	if m.ReorderTasksFn != nil {
		return m.ReorderTasksFn(ctx, pairs)
	}
	return nil
}

// MockUserService is a mock implementation of service.UserService for testing
type MockUserService struct {
	CreateUserFn func(ctx context.Context, email string, profile map[string]any) (*domain.User, bool, error)
	ListUsersFn  func(ctx context.Context) ([]*domain.User, error)
}

func (m *MockUserService) CreateUser(
	ctx context.Context,
	email string,
	profile map[string]any,
) (*domain.User, bool, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, email, profile)
	}
	if email == "" {
		return nil, false, domain.ErrEmptyUserEmail
	}
	return &domain.User{ID: uuid.New(), Email: email, Profile: profile}, true, nil
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, nil
}

// newTestRouter mounts the handlers on the same routes the server
// registers, so tests exercise path parameters and route precedence.
func newTestRouter(taskSvc service.TaskService, userSvc service.UserService) http.Handler {
	r := chi.NewRouter()

	userHandler := NewUserHandler(userSvc, nil)
	taskHandler := NewTaskHandler(taskSvc, nil)

	r.Post("/users", userHandler.CreateUser)
	r.Get("/users", userHandler.ListUsers)

	r.Post("/tasks", taskHandler.CreateTask)
	r.Get("/tasks", taskHandler.ListTasks)
	r.Get("/tasks/{id}", taskHandler.GetTask)
	r.Put("/tasks/reorder", taskHandler.ReorderTasks)
	r.Put("/tasks/{id}", taskHandler.UpdateTask)
	r.Delete("/tasks/{id}", taskHandler.DeleteTask)

	return r
}
