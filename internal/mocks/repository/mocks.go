// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"supergames/internal/domain/entity"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock bound to the test's lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmailAndDigest(ctx context.Context, email, digest string) (*entity.User, error) {
	args := m.Called(ctx, email, digest)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockGameRepository is a mock implementation of repository.GameRepository.
type MockGameRepository struct {
	mock.Mock
}

// NewMockGameRepository creates a mock bound to the test's lifecycle.
func NewMockGameRepository(t *testing.T) *MockGameRepository {
	m := &MockGameRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGameRepository) ListIDs(ctx context.Context, userID uint) ([]int, error) {
	args := m.Called(ctx, userID)
	if ids, ok := args.Get(0).([]int); ok {
		return ids, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockGameRepository) Find(ctx context.Context, userID uint, gameID int) (*entity.GameOwnership, error) {
	args := m.Called(ctx, userID, gameID)
	if ownership, ok := args.Get(0).(*entity.GameOwnership); ok {
		return ownership, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockGameRepository) Create(ctx context.Context, ownership *entity.GameOwnership) error {
	args := m.Called(ctx, ownership)

	return args.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, userID uint, gameID int) error {
	args := m.Called(ctx, userID, gameID)

	return args.Error(0)
}
