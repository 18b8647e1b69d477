package repository

import (
	"context"
	"fmt"

	"gamerate/internal/httpapi/models"

	"gorm.io/gorm"
)

type DeveloperRepo struct {
	db *gorm.DB
}

func NewDeveloperRepo(db *gorm.DB) *DeveloperRepo {
	return &DeveloperRepo{db: db}
}

func (r *DeveloperRepo) GetAll(ctx context.Context) ([]models.Developer, error) {
	var list []models.Developer
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get developers: %w", err)
	}
	return list, nil
}

func (r *DeveloperRepo) GetByID(ctx context.Context, id int64) (*models.Developer, error) {
	var d models.Developer
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeveloperRepo) GetByName(ctx context.Context, name string) (*models.Developer, error) {
	var d models.Developer
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeveloperRepo) SearchByName(ctx context.Context, name string) ([]models.Developer, error) {
	var list []models.Developer
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("name asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search developers: %w", err)
	}
	return list, nil
}

func (r *DeveloperRepo) GetByCountry(ctx context.Context, country string) ([]models.Developer, error) {
	var list []models.Developer
	if err := r.db.WithContext(ctx).
		Where("country = ?", country).
		Order("name asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get developers by country: %w", err)
	}
	return list, nil
}

func (r *DeveloperRepo) Create(ctx context.Context, d *models.Developer) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create developer: %w", err)
	}
	return nil
}

func (r *DeveloperRepo) Update(ctx context.Context, id int64, d *models.Developer) error {
	d.ID = id
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		return fmt.Errorf("update developer: %w", err)
	}
	return nil
}

func (r *DeveloperRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Developer{}, id).Error; err != nil {
		return fmt.Errorf("delete developer: %w", err)
	}
	return nil
}
