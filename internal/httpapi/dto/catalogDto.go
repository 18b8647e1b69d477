package dto

import (
	"time"

	"gamerate/internal/httpapi/models"
)

// Platform

type CreatePlatformDTO struct {
	Name         string  `json:"name" binding:"required"`
	ReleaseYear  int     `json:"release_year" binding:"required"`
	Manufacturer string  `json:"manufacturer" binding:"required"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

func (d CreatePlatformDTO) ToModel() models.Platform {
	return models.Platform{
		Name:         d.Name,
		ReleaseYear:  d.ReleaseYear,
		Manufacturer: d.Manufacturer,
		LogoURL:      d.LogoURL,
	}
}

type PlatformResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ReleaseYear  int     `json:"release_year"`
	Manufacturer string  `json:"manufacturer"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

func FromModelToPlatformResponse(p models.Platform) PlatformResponse {
	return PlatformResponse{
		ID:           p.ID,
		Name:         p.Name,
		ReleaseYear:  p.ReleaseYear,
		Manufacturer: p.Manufacturer,
		LogoURL:      p.LogoURL,
	}
}

func FromModelsToPlatformResponse(list []models.Platform) []PlatformResponse {
	resp := make([]PlatformResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, FromModelToPlatformResponse(p))
	}
	return resp
}

// Developer

type CreateDeveloperDTO struct {
	Name    string    `json:"name" binding:"required"`
	Founded time.Time `json:"founded" binding:"required"`
	Country string    `json:"country" binding:"required"`
}

func (d CreateDeveloperDTO) ToModel() models.Developer {
	return models.Developer{
		Name:    d.Name,
		Founded: d.Founded,
		Country: d.Country,
	}
}

type DeveloperResponse struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Founded time.Time `json:"founded"`
	Country string    `json:"country"`
}

func FromModelToDeveloperResponse(d models.Developer) DeveloperResponse {
	return DeveloperResponse{
		ID:      d.ID,
		Name:    d.Name,
		Founded: d.Founded,
		Country: d.Country,
	}
}

func FromModelsToDeveloperResponse(list []models.Developer) []DeveloperResponse {
	resp := make([]DeveloperResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, FromModelToDeveloperResponse(d))
	}
	return resp
}

// Genre

type CreateGenreDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

func (d CreateGenreDTO) ToModel() models.Genre {
	return models.Genre{
		Name:        d.Name,
		Description: d.Description,
	}
}

type GenreResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func FromModelToGenreResponse(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}

func FromModelsToGenreResponse(list []models.Genre) []GenreResponse {
	resp := make([]GenreResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, FromModelToGenreResponse(g))
	}
	return resp
}
