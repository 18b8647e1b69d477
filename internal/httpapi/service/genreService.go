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

type GenreService interface {
	GetAll(ctx context.Context) ([]dto.GenreResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.GenreResponse, error)
	SearchByName(ctx context.Context, name string) ([]dto.GenreResponse, error)
	Create(ctx context.Context, in dto.CreateGenreDTO) (*dto.GenreResponse, error)
	Update(ctx context.Context, id int64, in dto.CreateGenreDTO) (*dto.GenreResponse, error)
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	genres *repository.GenreRepo
	views  *cache.ViewCache
}

func NewGenreService(genres *repository.GenreRepo, views *cache.ViewCache) GenreService {
	return &genreService{genres: genres, views: views}
}

func (s *genreService) GetAll(ctx context.Context) ([]dto.GenreResponse, error) {
	const key = "genres:all"
	if cached, ok := s.views.Get(cache.RegionCatalog, key); ok {
		if list, ok := cached.([]dto.GenreResponse); ok {
			return list, nil
		}
	}
	list, err := s.genres.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelsToGenreResponse(list)
	s.views.Put(cache.RegionCatalog, key, resp)
	return resp, nil
}

func (s *genreService) GetByID(ctx context.Context, id int64) (*dto.GenreResponse, error) {
	g, err := s.genres.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Genre", id)
		}
		return nil, err
	}
	resp := dto.FromModelToGenreResponse(*g)
	return &resp, nil
}

func (s *genreService) SearchByName(ctx context.Context, name string) ([]dto.GenreResponse, error) {
	list, err := s.genres.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToGenreResponse(list), nil
}

func (s *genreService) Create(ctx context.Context, in dto.CreateGenreDTO) (*dto.GenreResponse, error) {
	if _, err := s.genres.GetByName(ctx, in.Name); err == nil {
		return nil, apperrors.NewDuplicate("Genre", "name", in.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	g := in.ToModel()
	if err := s.genres.Create(ctx, &g); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicate("Genre", "name", in.Name)
		}
		return nil, err
	}

	s.views.EvictRegion(cache.RegionCatalog)
	resp := dto.FromModelToGenreResponse(g)
	return &resp, nil
}

func (s *genreService) Update(ctx context.Context, id int64, in dto.CreateGenreDTO) (*dto.GenreResponse, error) {
	if _, err := s.genres.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Genre", id)
		}
		return nil, err
	}
	if existing, err := s.genres.GetByName(ctx, in.Name); err == nil && existing.ID != id {
		return nil, apperrors.NewDuplicate("Genre", "name", in.Name)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	g := in.ToModel()
	if err := s.genres.Update(ctx, id, &g); err != nil {
		return nil, err
	}

	s.views.EvictRegion(cache.RegionCatalog)
	resp := dto.FromModelToGenreResponse(g)
	return &resp, nil
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	if _, err := s.genres.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Genre", id)
		}
		return err
	}
	if err := s.genres.Delete(ctx, id); err != nil {
		return err
	}
	s.views.EvictRegion(cache.RegionCatalog)
	return nil
}
