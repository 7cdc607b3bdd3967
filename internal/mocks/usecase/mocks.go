// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"supergames/internal/usecase"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

// MockGameUsecase is a mock implementation of usecase.GameUsecase.
type MockGameUsecase struct {
	mock.Mock
}

// NewMockGameUsecase creates a mock bound to the test's lifecycle.
func NewMockGameUsecase(t *testing.T) *MockGameUsecase {
	m := &MockGameUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGameUsecase) ListGames(ctx context.Context, userID uint) ([]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int), args.Error(1)
}

func (m *MockGameUsecase) AddGame(ctx context.Context, input *usecase.AddGameInput) (*usecase.StatusOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StatusOutput), args.Error(1)
}

func (m *MockGameUsecase) RemoveGame(ctx context.Context, userID uint, gameID int) (*usecase.StatusOutput, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StatusOutput), args.Error(1)
}

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock bound to the test's lifecycle.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*usecase.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.UserRecord), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id uint) (*usecase.UserRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserRecord), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
