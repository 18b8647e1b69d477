package repository

import (
	"context"
	"fmt"

	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/models"

	"gorm.io/gorm"
)

// AssociationSet carries the target ids for all three association kinds of a
// game. A nil slice means "no targets of that kind".
type AssociationSet struct {
	PlatformIDs  []int64
	DeveloperIDs []int64
	GenreIDs     []int64
}

// AssociationRepo maintains the three many-to-many link sets between a game
// and its platforms, developers and genres. Updates are full replace: every
// existing join row for the (game, kind) is deleted and one row is inserted
// per distinct target id.
type AssociationRepo struct {
	db *gorm.DB
}

func NewAssociationRepo(db *gorm.DB) *AssociationRepo {
	return &AssociationRepo{db: db}
}

// Replace applies the full-replace semantics for all three kinds in one
// transaction.
func (r *AssociationRepo) Replace(ctx context.Context, gameID int64, set AssociationSet) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin replace associations: %w", tx.Error)
	}
	if err := replaceAssociations(tx, gameID, set); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *AssociationRepo) PlatformNamesByGame(ctx context.Context, gameID int64) ([]string, error) {
	return r.namesByGame(ctx, gameID, "platforms", "game_platforms", "platform_id")
}

func (r *AssociationRepo) DeveloperNamesByGame(ctx context.Context, gameID int64) ([]string, error) {
	return r.namesByGame(ctx, gameID, "developers", "game_developers", "developer_id")
}

func (r *AssociationRepo) GenreNamesByGame(ctx context.Context, gameID int64) ([]string, error) {
	return r.namesByGame(ctx, gameID, "genres", "game_genres", "genre_id")
}

// namesByGame resolves the target names of one association kind. DISTINCT
// keeps duplicate join rows for the same pair from showing up twice.
func (r *AssociationRepo) namesByGame(ctx context.Context, gameID int64, targetTable, joinTable, joinColumn string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table(targetTable).
		Select("DISTINCT "+targetTable+".name").
		Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.id", joinTable, joinTable, joinColumn, targetTable)).
		Where(joinTable+".game_id = ?", gameID).
		Order(targetTable + ".name").
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("resolve %s for game %d: %w", targetTable, gameID, err)
	}
	return names, nil
}

func (r *AssociationRepo) PlatformIDsByGame(ctx context.Context, gameID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.GamePlatform{}).
		Distinct("platform_id").Where("game_id = ?", gameID).Order("platform_id").Pluck("platform_id", &ids).Error
	return ids, err
}

func (r *AssociationRepo) DeveloperIDsByGame(ctx context.Context, gameID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.GameDeveloper{}).
		Distinct("developer_id").Where("game_id = ?", gameID).Order("developer_id").Pluck("developer_id", &ids).Error
	return ids, err
}

func (r *AssociationRepo) GenreIDsByGame(ctx context.Context, gameID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.GameGenre{}).
		Distinct("genre_id").Where("game_id = ?", gameID).Order("genre_id").Pluck("genre_id", &ids).Error
	return ids, err
}

// replaceAssociations runs inside an open transaction so game writes and the
// association replace commit atomically. All target ids are resolved before
// the first mutation; a missing id fails the whole operation with nothing
// applied.
func replaceAssociations(tx *gorm.DB, gameID int64, set AssociationSet) error {
	platformIDs, err := resolveTargetIDs(tx, &models.Platform{}, "Platform", set.PlatformIDs)
	if err != nil {
		return err
	}
	developerIDs, err := resolveTargetIDs(tx, &models.Developer{}, "Developer", set.DeveloperIDs)
	if err != nil {
		return err
	}
	genreIDs, err := resolveTargetIDs(tx, &models.Genre{}, "Genre", set.GenreIDs)
	if err != nil {
		return err
	}

	if err := deleteAssociationsForGame(tx, gameID); err != nil {
		return err
	}

	for _, id := range platformIDs {
		if err := tx.Create(&models.GamePlatform{GameID: gameID, PlatformID: id}).Error; err != nil {
			return fmt.Errorf("link platform %d: %w", id, err)
		}
	}
	for _, id := range developerIDs {
		if err := tx.Create(&models.GameDeveloper{GameID: gameID, DeveloperID: id}).Error; err != nil {
			return fmt.Errorf("link developer %d: %w", id, err)
		}
	}
	for _, id := range genreIDs {
		if err := tx.Create(&models.GameGenre{GameID: gameID, GenreID: id}).Error; err != nil {
			return fmt.Errorf("link genre %d: %w", id, err)
		}
	}
	return nil
}

// resolveTargetIDs dedupes the requested ids preserving order and verifies
// each one exists. Returns a NotFound naming the first id that does not.
func resolveTargetIDs(tx *gorm.DB, model any, resource string, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[int64]bool, len(ids))
	deduped := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}

	var found []int64
	if err := tx.Model(model).Where("id IN ?", deduped).Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("resolve %s ids: %w", resource, err)
	}
	foundSet := make(map[int64]bool, len(found))
	for _, id := range found {
		foundSet[id] = true
	}
	for _, id := range deduped {
		if !foundSet[id] {
			return nil, apperrors.NewNotFound(resource, id)
		}
	}
	return deduped, nil
}

func deleteAssociationsForGame(tx *gorm.DB, gameID int64) error {
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GamePlatform{}).Error; err != nil {
		return fmt.Errorf("delete platform links: %w", err)
	}
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GameDeveloper{}).Error; err != nil {
		return fmt.Errorf("delete developer links: %w", err)
	}
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GameGenre{}).Error; err != nil {
		return fmt.Errorf("delete genre links: %w", err)
	}
	return nil
}
