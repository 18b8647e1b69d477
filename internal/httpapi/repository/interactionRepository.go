package repository

import (
	"context"
	"database/sql"

	"gamerate/internal/httpapi/models"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	Update(ctx context.Context, interaction *models.Interaction) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Interaction, error)
	GetAll(ctx context.Context) ([]models.Interaction, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Interaction, error)
	GetByGame(ctx context.Context, gameID int64) ([]models.Interaction, error)
	GetByUserAndGame(ctx context.Context, userID, gameID int64) (*models.Interaction, error)
	GetPlayedByUser(ctx context.Context, userID int64) ([]models.Interaction, error)
	ExistsByUserAndGame(ctx context.Context, userID, gameID int64) (bool, error)
	AverageScore(ctx context.Context, gameID int64) (*float64, error)
	CountByGame(ctx context.Context, gameID int64) (int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) Update(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Save(interaction).Error
}

func (r *interactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Interaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *interactionRepository) GetByID(ctx context.Context, id int64) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).First(&interaction, id).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) GetAll(ctx context.Context) ([]models.Interaction, error) {
	var list []models.Interaction
	if err := r.db.WithContext(ctx).Order("updated_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *interactionRepository) GetByUser(ctx context.Context, userID int64) ([]models.Interaction, error) {
	var list []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByGame returns all reviews of a game, most recently touched first.
func (r *interactionRepository) GetByGame(ctx context.Context, gameID int64) ([]models.Interaction, error) {
	var list []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Preload("User").
		Order("updated_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *interactionRepository) GetByUserAndGame(ctx context.Context, userID, gameID int64) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&interaction).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *interactionRepository) GetPlayedByUser(ctx context.Context, userID int64) ([]models.Interaction, error) {
	var list []models.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND played = ?", userID, true).
		Order("updated_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *interactionRepository) ExistsByUserAndGame(ctx context.Context, userID, gameID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interaction{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	return count > 0, err
}

// AverageScore returns the mean of non-null scores for a game, or nil if the
// game has no scored interactions.
func (r *interactionRepository) AverageScore(ctx context.Context, gameID int64) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).Model(&models.Interaction{}).
		Select("AVG(score)").
		Where("game_id = ?", gameID).
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// CountByGame counts every interaction row for the game, scored or not.
func (r *interactionRepository) CountByGame(ctx context.Context, gameID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interaction{}).
		Where("game_id = ?", gameID).
		Count(&count).Error
	return count, err
}
