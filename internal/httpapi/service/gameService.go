package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gamerate/internal/cache"
	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/repository"

	"gorm.io/gorm"
)

// listingLimit bounds the recent and upcoming views.
const listingLimit = 10

// gameWriteRegions are the listing regions every game write clears. Update
// and delete additionally clear the detail entry of the touched game.
// Interaction writes clear nothing: rating listings may serve a stale
// aggregate for up to the cache TTL, which is accepted behavior.
var gameWriteRegions = []cache.Region{
	cache.RegionListing,
	cache.RegionRecent,
	cache.RegionUpcoming,
	cache.RegionTopRated,
	cache.RegionMostPopular,
}

type GameService interface {
	List(ctx context.Context) ([]dto.GameSummaryResponse, error)
	Recent(ctx context.Context) ([]dto.GameSummaryResponse, error)
	Upcoming(ctx context.Context) ([]dto.GameSummaryResponse, error)
	TopRated(ctx context.Context, limit int) ([]dto.GameSummaryResponse, error)
	MostPopular(ctx context.Context, limit int) ([]dto.GameSummaryResponse, error)
	Search(ctx context.Context, name string) ([]dto.GameSummaryResponse, error)
	GetDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error)
	Create(ctx context.Context, in dto.CreateGameDTO) (*dto.GameDetailResponse, error)
	Update(ctx context.Context, id int64, in dto.CreateGameDTO) (*dto.GameDetailResponse, error)
	Delete(ctx context.Context, id int64) error
	ByPlatform(ctx context.Context, platformID int64) ([]dto.GameSummaryResponse, error)
	ByDeveloper(ctx context.Context, developerID int64) ([]dto.GameSummaryResponse, error)
	ByGenre(ctx context.Context, genreID int64) ([]dto.GameSummaryResponse, error)
}

type gameService struct {
	games        *repository.GameRepo
	assocs       *repository.AssociationRepo
	interactions repository.InteractionRepository
	views        *cache.ViewCache
}

func NewGameService(
	games *repository.GameRepo,
	assocs *repository.AssociationRepo,
	interactions repository.InteractionRepository,
	views *cache.ViewCache,
) GameService {
	return &gameService{
		games:        games,
		assocs:       assocs,
		interactions: interactions,
		views:        views,
	}
}

// cachedSummaries is the shared cache-through read path for every listing
// region: consult the region, on miss compute via the bulk query and
// repopulate.
func (s *gameService) cachedSummaries(
	ctx context.Context,
	region cache.Region,
	key string,
	compute func(context.Context) ([]dto.GameSummaryResponse, error),
) ([]dto.GameSummaryResponse, error) {
	if cached, ok := s.views.Get(region, key); ok {
		if list, ok := cached.([]dto.GameSummaryResponse); ok {
			return list, nil
		}
	}
	list, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	s.views.Put(region, key, list)
	return list, nil
}

func (s *gameService) List(ctx context.Context) ([]dto.GameSummaryResponse, error) {
	return s.cachedSummaries(ctx, cache.RegionListing, "all", func(ctx context.Context) ([]dto.GameSummaryResponse, error) {
		list, err := s.games.ListSummaries(ctx)
		if err != nil {
			return nil, err
		}
		return dto.FromSummariesToResponse(list), nil
	})
}

func (s *gameService) Recent(ctx context.Context) ([]dto.GameSummaryResponse, error) {
	return s.cachedSummaries(ctx, cache.RegionRecent, "recent", func(ctx context.Context) ([]dto.GameSummaryResponse, error) {
		list, err := s.games.ListRecent(ctx, time.Now(), listingLimit)
		if err != nil {
			return nil, err
		}
		return dto.FromSummariesToResponse(list), nil
	})
}

func (s *gameService) Upcoming(ctx context.Context) ([]dto.GameSummaryResponse, error) {
	return s.cachedSummaries(ctx, cache.RegionUpcoming, "upcoming", func(ctx context.Context) ([]dto.GameSummaryResponse, error) {
		list, err := s.games.ListUpcoming(ctx, time.Now(), listingLimit)
		if err != nil {
			return nil, err
		}
		return dto.FromSummariesToResponse(list), nil
	})
}

func (s *gameService) TopRated(ctx context.Context, limit int) ([]dto.GameSummaryResponse, error) {
	return s.cachedSummaries(ctx, cache.RegionTopRated, strconv.Itoa(limit), func(ctx context.Context) ([]dto.GameSummaryResponse, error) {
		list, err := s.games.ListTopRated(ctx, limit)
		if err != nil {
			return nil, err
		}
		return dto.FromSummariesToResponse(list), nil
	})
}

func (s *gameService) MostPopular(ctx context.Context, limit int) ([]dto.GameSummaryResponse, error) {
	return s.cachedSummaries(ctx, cache.RegionMostPopular, strconv.Itoa(limit), func(ctx context.Context) ([]dto.GameSummaryResponse, error) {
		list, err := s.games.ListMostReviewed(ctx, limit)
		if err != nil {
			return nil, err
		}
		return dto.FromSummariesToResponse(list), nil
	})
}

// Search caches by the literal term. Search entries are never proactively
// invalidated; they age out with the TTL.
func (s *gameService) Search(ctx context.Context, name string) ([]dto.GameSummaryResponse, error) {
	return s.cachedSummaries(ctx, cache.RegionSearch, name, func(ctx context.Context) ([]dto.GameSummaryResponse, error) {
		list, err := s.games.SearchByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return dto.FromSummariesToResponse(list), nil
	})
}

func (s *gameService) GetDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error) {
	key := strconv.FormatInt(id, 10)
	if cached, ok := s.views.Get(cache.RegionDetail, key); ok {
		if detail, ok := cached.(*dto.GameDetailResponse); ok {
			return detail, nil
		}
	}

	detail, err := s.buildDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	s.views.Put(cache.RegionDetail, key, detail)
	return detail, nil
}

func (s *gameService) buildDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Game", id)
		}
		return nil, err
	}

	platforms, err := s.assocs.PlatformNamesByGame(ctx, id)
	if err != nil {
		return nil, err
	}
	developers, err := s.assocs.DeveloperNamesByGame(ctx, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.assocs.GenreNamesByGame(ctx, id)
	if err != nil {
		return nil, err
	}

	avg, err := s.interactions.AverageScore(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.interactions.CountByGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.GameDetailResponse{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		CoverURL:    game.CoverURL,
		ReleaseDate: game.ReleaseDate,
		Platforms:   platforms,
		Developers:  developers,
		Genres:      genres,
		AvgScore:    avg,
		ReviewCount: count,
	}, nil
}

// Create persists the game with its associations, then clears the listing
// regions. There is no prior detail entry to clear. The returned detail view
// repopulates the detail region.
func (s *gameService) Create(ctx context.Context, in dto.CreateGameDTO) (*dto.GameDetailResponse, error) {
	game := in.ToModel()
	set := repository.AssociationSet{
		PlatformIDs:  in.PlatformIDs,
		DeveloperIDs: in.DeveloperIDs,
		GenreIDs:     in.GenreIDs,
	}
	if err := s.games.Create(ctx, &game, set); err != nil {
		return nil, err
	}

	s.views.EvictRegions(gameWriteRegions...)
	return s.GetDetail(ctx, game.ID)
}

func (s *gameService) Update(ctx context.Context, id int64, in dto.CreateGameDTO) (*dto.GameDetailResponse, error) {
	existing, err := s.games.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Game", id)
		}
		return nil, err
	}

	game := in.ToModel()
	game.CreatedAt = existing.CreatedAt
	set := repository.AssociationSet{
		PlatformIDs:  in.PlatformIDs,
		DeveloperIDs: in.DeveloperIDs,
		GenreIDs:     in.GenreIDs,
	}
	if err := s.games.Update(ctx, id, &game, set); err != nil {
		return nil, err
	}

	s.views.EvictRegions(gameWriteRegions...)
	s.views.Evict(cache.RegionDetail, strconv.FormatInt(id, 10))
	return s.GetDetail(ctx, id)
}

func (s *gameService) Delete(ctx context.Context, id int64) error {
	exists, err := s.games.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Game", id)
	}

	if err := s.games.Delete(ctx, id); err != nil {
		return err
	}

	s.views.EvictRegions(gameWriteRegions...)
	s.views.Evict(cache.RegionDetail, strconv.FormatInt(id, 10))
	return nil
}

func (s *gameService) ByPlatform(ctx context.Context, platformID int64) ([]dto.GameSummaryResponse, error) {
	list, err := s.games.ListByPlatform(ctx, platformID)
	if err != nil {
		return nil, err
	}
	return dto.FromSummariesToResponse(list), nil
}

func (s *gameService) ByDeveloper(ctx context.Context, developerID int64) ([]dto.GameSummaryResponse, error) {
	list, err := s.games.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	return dto.FromSummariesToResponse(list), nil
}

func (s *gameService) ByGenre(ctx context.Context, genreID int64) ([]dto.GameSummaryResponse, error) {
	list, err := s.games.ListByGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return dto.FromSummariesToResponse(list), nil
}
