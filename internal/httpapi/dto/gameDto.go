package dto

import (
	"time"

	"gamerate/internal/httpapi/models"
)

// CreateGameDTO is used for both POST /api/games and PUT /api/games/:id.
// Updates are full replace: every field and every association set is applied
// as given, no diffing.
type CreateGameDTO struct {
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	CoverURL     string    `json:"cover_url" binding:"required"`
	ReleaseDate  time.Time `json:"release_date" binding:"required"`
	PlatformIDs  []int64   `json:"platform_ids" binding:"required,min=1"`
	DeveloperIDs []int64   `json:"developer_ids" binding:"required,min=1"`
	GenreIDs     []int64   `json:"genre_ids" binding:"required,min=1"`
}

func (d CreateGameDTO) ToModel() models.Game {
	return models.Game{
		Name:        d.Name,
		Description: d.Description,
		CoverURL:    d.CoverURL,
		ReleaseDate: d.ReleaseDate,
	}
}

// GameSummaryResponse is one row of a listing view.
type GameSummaryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CoverURL    string    `json:"cover_url"`
	ReleaseDate time.Time `json:"release_date"`
	AvgScore    *float64  `json:"avg_score"`
}

func FromSummaryToResponse(s models.GameSummary) GameSummaryResponse {
	return GameSummaryResponse{
		ID:          s.ID,
		Name:        s.Name,
		CoverURL:    s.CoverURL,
		ReleaseDate: s.ReleaseDate,
		AvgScore:    s.AvgScore,
	}
}

func FromSummariesToResponse(list []models.GameSummary) []GameSummaryResponse {
	resp := make([]GameSummaryResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, FromSummaryToResponse(s))
	}
	return resp
}

// GameDetailResponse is the full detail view: game fields, resolved
// association names and the rating aggregate.
type GameDetailResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoverURL    string    `json:"cover_url"`
	ReleaseDate time.Time `json:"release_date"`
	Platforms   []string  `json:"platforms"`
	Developers  []string  `json:"developers"`
	Genres      []string  `json:"genres"`
	AvgScore    *float64  `json:"avg_score"`
	ReviewCount int64     `json:"review_count"`
}
