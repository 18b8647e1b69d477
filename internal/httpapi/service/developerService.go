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

type DeveloperService interface {
	GetAll(ctx context.Context) ([]dto.DeveloperResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DeveloperResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.DeveloperResponse, error)
	GetByCountry(ctx context.Context, country string) ([]dto.DeveloperResponse, error)
	Create(ctx context.Context, in dto.CreateDeveloperDTO) (*dto.DeveloperResponse, error)
	Update(ctx context.Context, id int64, in dto.CreateDeveloperDTO) (*dto.DeveloperResponse, error)
	Delete(ctx context.Context, id int64) error
}

type developerService struct {
	developers *repository.DeveloperRepo
	views      *cache.ViewCache
}

func NewDeveloperService(developers *repository.DeveloperRepo, views *cache.ViewCache) DeveloperService {
	return &developerService{developers: developers, views: views}
}

func (s *developerService) GetAll(ctx context.Context) ([]dto.DeveloperResponse, error) {
	const key = "developers:all"
	if cached, ok := s.views.Get(cache.RegionCatalog, key); ok {
		if list, ok := cached.([]dto.DeveloperResponse); ok {
			return list, nil
		}
	}
	list, err := s.developers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelsToDeveloperResponse(list)
	s.views.Put(cache.RegionCatalog, key, resp)
	return resp, nil
}

func (s *developerService) GetByID(ctx context.Context, id int64) (*dto.DeveloperResponse, error) {
	d, err := s.developers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Developer", id)
		}
		return nil, err
	}
	resp := dto.FromModelToDeveloperResponse(*d)
	return &resp, nil
}

func (s *developerService) SearchByName(ctx context.Context, name string) ([]dto.DeveloperResponse, error) {
	list, err := s.developers.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToDeveloperResponse(list), nil
}

func (s *developerService) GetByCountry(ctx context.Context, country string) ([]dto.DeveloperResponse, error) {
	list, err := s.developers.GetByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToDeveloperResponse(list), nil
}

func (s *developerService) Create(ctx context.Context, in dto.CreateDeveloperDTO) (*dto.DeveloperResponse, error) {
	if _, err := s.developers.GetByName(ctx, in.Name); err == nil {
		return nil, apperrors.NewDuplicate("Developer", "name", in.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := in.ToModel()
	if err := s.developers.Create(ctx, &d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicate("Developer", "name", in.Name)
		}
		return nil, err
	}

	s.views.EvictRegion(cache.RegionCatalog)
	resp := dto.FromModelToDeveloperResponse(d)
	return &resp, nil
}

func (s *developerService) Update(ctx context.Context, id int64, in dto.CreateDeveloperDTO) (*dto.DeveloperResponse, error) {
	if _, err := s.developers.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Developer", id)
		}
		return nil, err
	}
	if existing, err := s.developers.GetByName(ctx, in.Name); err == nil && existing.ID != id {
		return nil, apperrors.NewDuplicate("Developer", "name", in.Name)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := in.ToModel()
	if err := s.developers.Update(ctx, id, &d); err != nil {
		return nil, err
	}

	s.views.EvictRegion(cache.RegionCatalog)
	resp := dto.FromModelToDeveloperResponse(d)
	return &resp, nil
}

func (s *developerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.developers.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Developer", id)
		}
		return err
	}
	if err := s.developers.Delete(ctx, id); err != nil {
		return err
	}
	s.views.EvictRegion(cache.RegionCatalog)
	return nil
}
