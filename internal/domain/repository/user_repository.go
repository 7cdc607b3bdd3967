// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"supergames/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAndDigest retrieves the user whose email and password digest
	// both match. This is the credential lookup used by login.
	FindByEmailAndDigest(ctx context.Context, email, digest string) (*entity.User, error)

	// Create persists a new user entity and fills in the generated ID and
	// creation timestamp.
	Create(ctx context.Context, user *entity.User) error

	// List retrieves all users.
	List(ctx context.Context) ([]*entity.User, error)

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uint) error
}
