package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/domain/repository"
	"supergames/internal/usecase"
)

// userService implements the administrative UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// ListUsers returns all users.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserRecord, error) {
	users, err := srv.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	records := make([]*usecase.UserRecord, 0, len(users))
	for _, user := range users {
		records = append(records, usecase.NewUserRecord(user))
	}

	return records, nil
}

// GetUser returns one user by ID.
func (srv *userService) GetUser(ctx context.Context, id uint) (*usecase.UserRecord, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return usecase.NewUserRecord(user), nil
}

// UpdateUser modifies the mutable profile fields. There is no update path for
// the password.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) error {
	user, err := srv.users.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email

	if err := srv.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.logger.Debug("User updated", "userID", input.ID)

	return nil
}

// DeleteUser removes a user by ID.
func (srv *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := srv.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted", "userID", id)

	return nil
}
