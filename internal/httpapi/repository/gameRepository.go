package repository

import (
	"context"
	"fmt"
	"time"

	"gamerate/internal/httpapi/models"

	"gorm.io/gorm"
)

// summaryColumns feeds every listing query: game columns plus the aggregated
// average score, computed in a single grouped pass over all games. AVG
// ignores NULL scores, so unscored interactions count for existence but not
// for the average.
const summaryColumns = "games.id, games.name, games.cover_url, games.release_date, AVG(interactions.score) AS avg_score"

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

func (r *GameRepo) summaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Game{}).
		Select(summaryColumns).
		Joins("LEFT JOIN interactions ON interactions.game_id = games.id").
		Group("games.id, games.name, games.cover_url, games.release_date")
}

// ListSummaries returns every game with its average score, one query total.
func (r *GameRepo) ListSummaries(ctx context.Context) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).Order("games.id asc").Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return list, nil
}

// ListRecent returns games released on or before the given date, newest first.
func (r *GameRepo) ListRecent(ctx context.Context, before time.Time, limit int) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Where("games.release_date <= ?", before).
		Order("games.release_date desc, games.id asc").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list recent games: %w", err)
	}
	return list, nil
}

// ListUpcoming returns games released strictly after the given date, soonest first.
func (r *GameRepo) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Where("games.release_date > ?", after).
		Order("games.release_date asc, games.id asc").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list upcoming games: %w", err)
	}
	return list, nil
}

// ListTopRated orders by average score descending. Games with no scored
// interactions sort after all scored games; ties break by ascending id so the
// ordering is deterministic.
func (r *GameRepo) ListTopRated(ctx context.Context, limit int) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Order("avg_score DESC NULLS LAST, games.id asc").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list top rated games: %w", err)
	}
	return list, nil
}

// ListMostReviewed orders by interaction count descending, counting every
// interaction row whether or not it carries a score.
func (r *GameRepo) ListMostReviewed(ctx context.Context, limit int) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Order("COUNT(interactions.id) DESC, games.id asc").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list most reviewed games: %w", err)
	}
	return list, nil
}

// SearchByName performs a case-insensitive partial match on the game name.
func (r *GameRepo) SearchByName(ctx context.Context, name string) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Where("LOWER(games.name) LIKE LOWER(?)", "%"+name+"%").
		Order("games.id asc").
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("search games by name: %w", err)
	}
	return list, nil
}

// ListByPlatform returns summaries of games linked to the platform. The IN
// subquery dedupes duplicate join rows for the same pair.
func (r *GameRepo) ListByPlatform(ctx context.Context, platformID int64) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Where("games.id IN (?)", r.db.Model(&models.GamePlatform{}).Select("game_id").Where("platform_id = ?", platformID)).
		Order("games.id asc").
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list games by platform: %w", err)
	}
	return list, nil
}

func (r *GameRepo) ListByDeveloper(ctx context.Context, developerID int64) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Where("games.id IN (?)", r.db.Model(&models.GameDeveloper{}).Select("game_id").Where("developer_id = ?", developerID)).
		Order("games.id asc").
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list games by developer: %w", err)
	}
	return list, nil
}

func (r *GameRepo) ListByGenre(ctx context.Context, genreID int64) ([]models.GameSummary, error) {
	var list []models.GameSummary
	if err := r.summaries(ctx).
		Where("games.id IN (?)", r.db.Model(&models.GameGenre{}).Select("game_id").Where("genre_id = ?", genreID)).
		Order("games.id asc").
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list games by genre: %w", err)
	}
	return list, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	var g models.Game
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists the game and its association set in one transaction. Every
// target id is resolved before any join row is written, so a bad id leaves
// nothing behind.
func (r *GameRepo) Create(ctx context.Context, g *models.Game, set AssociationSet) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin create game: %w", tx.Error)
	}
	if err := tx.Create(g).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("create game: %w", err)
	}
	if err := replaceAssociations(tx, g.ID, set); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Update replaces every game field and the full association set (delete all
// prior join rows, insert the new ones) in one transaction.
func (r *GameRepo) Update(ctx context.Context, id int64, g *models.Game, set AssociationSet) error {
	g.ID = id
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin update game: %w", tx.Error)
	}
	if err := tx.Save(g).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("update game: %w", err)
	}
	if err := replaceAssociations(tx, id, set); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Delete removes the game, all its join rows and all its interactions.
func (r *GameRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin delete game: %w", tx.Error)
	}
	if err := deleteAssociationsForGame(tx, id); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("game_id = ?", id).Delete(&models.Interaction{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete interactions for game: %w", err)
	}
	if err := tx.Delete(&models.Game{}, id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete game: %w", err)
	}
	return tx.Commit().Error
}
