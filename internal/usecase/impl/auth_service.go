// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"supergames/internal/domain/entity"
	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/domain/repository"
	"supergames/internal/domain/service"
	"supergames/internal/domain/validation"
	"supergames/internal/usecase"
)

// authService implements the AuthUsecase interface. It orchestrates
// validation, the user store, the hasher and the token issuer; the check
// order inside Login and Register is part of the API contract because it
// decides which error message surfaces first.
type authService struct {
	users  repository.UserRepository
	games  repository.GameRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	users repository.UserRepository,
	games repository.GameRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:  users,
		games:  games,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and returns a token with the owned game list.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrFieldsRequired
	}
	if !validation.IsValidEmail(input.Email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if !validation.IsValidPassword(input.Password) {
		return nil, domainerrors.ErrInvalidPassword
	}

	digest := srv.hasher.Hash(input.Password)

	user, err := srv.users.FindByEmailAndDigest(ctx, input.Email, digest)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same outcome for unknown email and wrong password, so the
			// response never discloses which one failed.
			srv.logger.Debug("Login rejected", "email", input.Email)

			return nil, domainerrors.ErrCredentials
		}

		return nil, errors.Wrap(err, "failed to look up credentials")
	}

	token, err := srv.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	myGames, err := srv.games.ListIDs(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned games")
	}

	srv.logger.Debug("User logged in", "userID", user.ID)

	return &usecase.LoginOutput{
		Status:  http.StatusOK,
		Token:   token,
		User:    usecase.NewUserInfo(user),
		MyGames: myGames,
	}, nil
}

// Register creates a new account. Note the check order: the email existence
// lookup runs before the email format check, matching what clients observe.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerrors.ErrFieldsRequired
	}
	if !validation.IsValidName(input.FirstName) || !validation.IsValidName(input.LastName) {
		return nil, domainerrors.ErrInvalidName
	}

	if _, err := srv.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email existence")
	}

	if !validation.IsValidEmail(input.Email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if !validation.IsValidPassword(input.Password) {
		return nil, domainerrors.ErrInvalidPassword
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	digest := srv.hasher.Hash(input.Password)
	newUser := &entity.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordDigest: digest,
		CreatedAt:      time.Now().UTC(),
	}

	// The storage-level unique index on email closes the race between the
	// existence check above and this insert; a conflicting concurrent
	// registration surfaces here as ErrEmailExists.
	if err := srv.users.Create(ctx, newUser); err != nil {
		srv.logger.Error("Failed to persist new user", "email", input.Email, "error", err)

		return nil, err
	}

	// Confirm the write by reading the credential pair back. Absence here is
	// an invariant violation, not a user error.
	registered, err := srv.users.FindByEmailAndDigest(ctx, input.Email, digest)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("Registered user missing on re-read", "email", input.Email)

			return nil, domainerrors.ErrRegistrationLost
		}

		return nil, errors.Wrap(err, "failed to confirm registration")
	}

	token, err := srv.tokens.Issue(registered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Info("User registered", "userID", registered.ID)

	return &usecase.RegisterOutput{
		Status: http.StatusCreated,
		Token:  token,
		User:   usecase.NewUserInfo(registered),
	}, nil
}
