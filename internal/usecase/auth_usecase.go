// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"supergames/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// --- Output DTOs ---

// UserInfo is the identity block returned with a token. It never carries
// password material.
type UserInfo struct {
	ID       uint   `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// LoginOutput is the response body of a successful login.
type LoginOutput struct {
	Status  int      `json:"status"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
	MyGames []int    `json:"myGames"`
}

// RegisterOutput is the response body of a successful registration. A fresh
// account owns nothing, so there is no game list yet.
type RegisterOutput struct {
	Status int      `json:"status"`
	Token  string   `json:"token"`
	User   UserInfo `json:"user"`
}

// NewUserInfo maps a user entity to its response representation.
func NewUserInfo(user *entity.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		UserName: user.DisplayName(),
		Email:    user.Email,
	}
}

// AuthUsecase defines the authentication operations the delivery layer
// depends on.
type AuthUsecase interface {
	// Login verifies credentials and returns a token together with the
	// user's identity and owned game list.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates a new account, verifies it persisted, and returns a
	// token for the fresh user.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
