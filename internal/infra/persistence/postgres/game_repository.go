package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"supergames/internal/domain/entity"
	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/domain/repository"
	"supergames/internal/infra/persistence/model"
)

// gameRepository implements the repository.GameRepository interface using GORM.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

// ListIDs returns the game IDs owned by the given user.
func (repo *gameRepository) ListIDs(ctx context.Context, userID uint) ([]int, error) {
	ids := make([]int, 0)
	err := repo.db.WithContext(ctx).
		Model(&model.GameOwnershipModel{}).
		Where("user_id = ?", userID).
		Order("game_id").
		Pluck("game_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list game ids")
	}

	return ids, nil
}

// Find retrieves a single ownership record.
func (repo *gameRepository) Find(ctx context.Context, userID uint, gameID int) (*entity.GameOwnership, error) {
	var ownership model.GameOwnershipModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&ownership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameOwnershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find game ownership")
	}

	return &entity.GameOwnership{UserID: ownership.UserID, GameID: ownership.GameID}, nil
}

// Create persists a new ownership record.
func (repo *gameRepository) Create(ctx context.Context, ownership *entity.GameOwnership) error {
	gameM := &model.GameOwnershipModel{
		UserID: ownership.UserID,
		GameID: ownership.GameID,
	}

	if err := repo.db.WithContext(ctx).Create(gameM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrGameExists.WrapMessage("game ownership already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown user for game ownership")
		}

		return domainerrors.NewStorageError(err, "failed to create game ownership")
	}

	return nil
}

// Delete removes an ownership record.
func (repo *gameRepository) Delete(ctx context.Context, userID uint, gameID int) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&model.GameOwnershipModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete game ownership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameOwnershipNotFound
	}

	return nil
}
