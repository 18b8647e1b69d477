package service

import (
	"context"
	"errors"

	"gamerate/internal/cache"
	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/repository"

	"gorm.io/gorm"
)

type PlatformService interface {
	GetAll(ctx context.Context) ([]dto.PlatformResponse, error)
	GetAllOrderByYearDesc(ctx context.Context) ([]dto.PlatformResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PlatformResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.PlatformResponse, error)
	GetByManufacturer(ctx context.Context, manufacturer string) ([]dto.PlatformResponse, error)
	Create(ctx context.Context, in dto.CreatePlatformDTO) (*dto.PlatformResponse, error)
	Update(ctx context.Context, id int64, in dto.CreatePlatformDTO) (*dto.PlatformResponse, error)
	Delete(ctx context.Context, id int64) error
}

// platformService caches the full platform listing in the catalog region and
// clears that region on every platform write.
type platformService struct {
	platforms *repository.PlatformRepo
	views     *cache.ViewCache
}

func NewPlatformService(platforms *repository.PlatformRepo, views *cache.ViewCache) PlatformService {
	return &platformService{platforms: platforms, views: views}
}

func (s *platformService) GetAll(ctx context.Context) ([]dto.PlatformResponse, error) {
	const key = "platforms:all"
	if cached, ok := s.views.Get(cache.RegionCatalog, key); ok {
		if list, ok := cached.([]dto.PlatformResponse); ok {
			return list, nil
		}
	}
	list, err := s.platforms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelsToPlatformResponse(list)
	s.views.Put(cache.RegionCatalog, key, resp)
	return resp, nil
}

func (s *platformService) GetAllOrderByYearDesc(ctx context.Context) ([]dto.PlatformResponse, error) {
	list, err := s.platforms.GetAllOrderByYearDesc(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToPlatformResponse(list), nil
}

func (s *platformService) GetByID(ctx context.Context, id int64) (*dto.PlatformResponse, error) {
	p, err := s.platforms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Platform", id)
		}
		return nil, err
	}
	resp := dto.FromModelToPlatformResponse(*p)
	return &resp, nil
}

func (s *platformService) SearchByName(ctx context.Context, name string) ([]dto.PlatformResponse, error) {
	list, err := s.platforms.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToPlatformResponse(list), nil
}

func (s *platformService) GetByManufacturer(ctx context.Context, manufacturer string) ([]dto.PlatformResponse, error) {
	list, err := s.platforms.GetByManufacturer(ctx, manufacturer)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToPlatformResponse(list), nil
}

func (s *platformService) Create(ctx context.Context, in dto.CreatePlatformDTO) (*dto.PlatformResponse, error) {
	if _, err := s.platforms.GetByName(ctx, in.Name); err == nil {
		return nil, apperrors.NewDuplicate("Platform", "name", in.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := in.ToModel()
	if err := s.platforms.Create(ctx, &p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicate("Platform", "name", in.Name)
		}
		return nil, err
	}

	s.views.EvictRegion(cache.RegionCatalog)
	resp := dto.FromModelToPlatformResponse(p)
	return &resp, nil
}

func (s *platformService) Update(ctx context.Context, id int64, in dto.CreatePlatformDTO) (*dto.PlatformResponse, error) {
	if _, err := s.platforms.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Platform", id)
		}
		return nil, err
	}
	if existing, err := s.platforms.GetByName(ctx, in.Name); err == nil && existing.ID != id {
		return nil, apperrors.NewDuplicate("Platform", "name", in.Name)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := in.ToModel()
	if err := s.platforms.Update(ctx, id, &p); err != nil {
		return nil, err
	}

	s.views.EvictRegion(cache.RegionCatalog)
	resp := dto.FromModelToPlatformResponse(p)
	return &resp, nil
}

func (s *platformService) Delete(ctx context.Context, id int64) error {
	if _, err := s.platforms.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Platform", id)
		}
		return err
	}
	if err := s.platforms.Delete(ctx, id); err != nil {
		return err
	}
	s.views.EvictRegion(cache.RegionCatalog)
	return nil
}
