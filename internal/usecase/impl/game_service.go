package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"supergames/internal/domain/entity"
	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/domain/repository"
	"supergames/internal/usecase"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	games  repository.GameRepository
	logger *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(games repository.GameRepository, logger *slog.Logger) usecase.GameUsecase {
	return &gameService{
		games:  games,
		logger: logger,
	}
}

// ListGames returns the game IDs owned by the user.
func (srv *gameService) ListGames(ctx context.Context, userID uint) ([]int, error) {
	ids, err := srv.games.ListIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return ids, nil
}

// AddGame records a new ownership pair. The existence check gives the
// friendlier duplicate message; the composite primary key backs it up.
func (srv *gameService) AddGame(ctx context.Context, input *usecase.AddGameInput) (*usecase.StatusOutput, error) {
	_, err := srv.games.Find(ctx, input.UserID, input.GameID)
	if err == nil {
		return nil, domainerrors.ErrGameExists
	}
	if !errors.Is(err, repository.ErrGameOwnershipNotFound) {
		return nil, errors.Wrap(err, "failed to check game ownership")
	}

	ownership := &entity.GameOwnership{UserID: input.UserID, GameID: input.GameID}
	if err := srv.games.Create(ctx, ownership); err != nil {
		return nil, err
	}

	srv.logger.Debug("Game added", "userID", input.UserID, "gameID", input.GameID)

	return &usecase.StatusOutput{
		Status:  http.StatusCreated,
		Message: "GameIds Created",
	}, nil
}

// RemoveGame deletes an ownership pair.
func (srv *gameService) RemoveGame(ctx context.Context, userID uint, gameID int) (*usecase.StatusOutput, error) {
	if err := srv.games.Delete(ctx, userID, gameID); err != nil {
		if errors.Is(err, repository.ErrGameOwnershipNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to delete game ownership")
	}

	srv.logger.Debug("Game removed", "userID", userID, "gameID", gameID)

	return &usecase.StatusOutput{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("Eliminated gameids %d%d", userID, gameID),
	}, nil
}
