package repository

import (
	"context"
	"errors"

	"supergames/internal/domain/entity"
)

// ErrGameOwnershipNotFound is returned when a (user, game) pair does not exist.
var ErrGameOwnershipNotFound = errors.New("game ownership not found")

// GameRepository defines persistence operations for the per-user owned game list.
type GameRepository interface {
	// ListIDs returns the game IDs owned by the given user, never nil.
	ListIDs(ctx context.Context, userID uint) ([]int, error)

	// Find retrieves a single ownership record.
	Find(ctx context.Context, userID uint, gameID int) (*entity.GameOwnership, error)

	// Create persists a new ownership record.
	Create(ctx context.Context, ownership *entity.GameOwnership) error

	// Delete removes an ownership record.
	Delete(ctx context.Context, userID uint, gameID int) error
}
