package usecase

import (
	"context"
	"time"

	"supergames/internal/domain/entity"
)

// UserRecord is the full user representation for the administrative user
// endpoints, minus the password digest.
type UserRecord struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateUserInput carries the mutable profile fields.
type UpdateUserInput struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewUserRecord maps a user entity to its administrative representation.
func NewUserRecord(user *entity.User) *UserRecord {
	return &UserRecord{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// UserUsecase defines the administrative user operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*UserRecord, error)
	GetUser(ctx context.Context, id uint) (*UserRecord, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) error
	DeleteUser(ctx context.Context, id uint) error
}
