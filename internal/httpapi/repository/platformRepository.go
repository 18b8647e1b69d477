package repository

import (
	"context"
	"fmt"

	"gamerate/internal/httpapi/models"

	"gorm.io/gorm"
)

type PlatformRepo struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) *PlatformRepo {
	return &PlatformRepo{db: db}
}

func (r *PlatformRepo) GetAll(ctx context.Context) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get platforms: %w", err)
	}
	return list, nil
}

func (r *PlatformRepo) GetAllOrderByYearDesc(ctx context.Context) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).Order("release_year desc, name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get platforms by year: %w", err)
	}
	return list, nil
}

func (r *PlatformRepo) GetByID(ctx context.Context, id int64) (*models.Platform, error) {
	var p models.Platform
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepo) GetByName(ctx context.Context, name string) (*models.Platform, error) {
	var p models.Platform
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepo) SearchByName(ctx context.Context, name string) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("name asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search platforms: %w", err)
	}
	return list, nil
}

func (r *PlatformRepo) GetByManufacturer(ctx context.Context, manufacturer string) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).
		Where("manufacturer = ?", manufacturer).
		Order("release_year desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get platforms by manufacturer: %w", err)
	}
	return list, nil
}

func (r *PlatformRepo) Create(ctx context.Context, p *models.Platform) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create platform: %w", err)
	}
	return nil
}

func (r *PlatformRepo) Update(ctx context.Context, id int64, p *models.Platform) error {
	p.ID = id
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	return nil
}

func (r *PlatformRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Platform{}, id).Error; err != nil {
		return fmt.Errorf("delete platform: %w", err)
	}
	return nil
}
