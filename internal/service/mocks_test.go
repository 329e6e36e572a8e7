package service

import (
	"context"

	"github.com/google/uuid"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/store"
)

// MockTaskStore is a mock implementation of store.TaskStore for testing
type MockTaskStore struct {
	CreateFn      func(ctx context.Context, task *domain.Task) error
	ListByOwnerFn func(ctx context.Context, addedBy string) ([]*domain.Task, error)
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFn      func(ctx context.Context, id uuid.UUID, addedBy string, order int, fields map[string]any) (store.UpdateResult, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID, addedBy string) error
	SetOrderFn    func(ctx context.Context, id uuid.UUID, order int) error
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *MockTaskStore) ListByOwner(ctx context.Context, addedBy string) ([]*domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, addedBy)
	}
	return nil, nil
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *MockTaskStore) Update(
	ctx context.Context,
	id uuid.UUID,
	addedBy string,
	order int,
	fields map[string]any,
) (store.UpdateResult, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, addedBy, order, fields)
	}
	return store.UpdateResult{}, nil
}

func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID, addedBy string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, addedBy)
	}
	return nil
}

func (m *MockTaskStore) SetOrder(ctx context.Context, id uuid.UUID, order int) error {
	if m.SetOrderFn != nil {
		return m.SetOrderFn(ctx, id, order)
	}
	return nil
}

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context) ([]*domain.User, error)
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
