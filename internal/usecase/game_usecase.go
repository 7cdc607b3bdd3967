package usecase

import (
	"context"
)

// AddGameInput identifies the ownership pair to create.
type AddGameInput struct {
	UserID uint `json:"userId" validate:"required"`
	GameID int  `json:"gameId" validate:"required"`
}

// StatusOutput is the generic {status, message} body used by the game
// ownership endpoints.
type StatusOutput struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// GameUsecase defines the owned-game list operations.
type GameUsecase interface {
	// ListGames returns the game IDs owned by the user, never nil.
	ListGames(ctx context.Context, userID uint) ([]int, error)

	// AddGame records that the user owns the game. Duplicate pairs are
	// rejected.
	AddGame(ctx context.Context, input *AddGameInput) (*StatusOutput, error)

	// RemoveGame deletes an ownership pair.
	RemoveGame(ctx context.Context, userID uint, gameID int) (*StatusOutput, error)
}
