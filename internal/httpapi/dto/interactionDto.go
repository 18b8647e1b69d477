package dto

import (
	"time"

	"gamerate/internal/httpapi/models"
)

// CreateInteractionDTO is used for creating and for updating an interaction;
// updates replace score, review and played wholesale.
type CreateInteractionDTO struct {
	GameID int64   `json:"game_id" binding:"required"`
	Score  *int    `json:"score,omitempty"`
	Review *string `json:"review,omitempty" binding:"omitempty,max=2000"`
	Played bool    `json:"played"`
}

type InteractionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	GameID    int64     `json:"game_id"`
	Score     *int      `json:"score,omitempty"`
	Review    *string   `json:"review,omitempty"`
	Played    bool      `json:"played"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelToInteractionResponse(i *models.Interaction) *InteractionResponse {
	resp := &InteractionResponse{
		ID:        i.ID,
		UserID:    i.UserID,
		GameID:    i.GameID,
		Score:     i.Score,
		Review:    i.Review,
		Played:    i.Played,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
	if i.User.ID != 0 {
		resp.UserName = i.User.Name
	}
	return resp
}

func FromModelsToInteractionResponse(list []models.Interaction) []InteractionResponse {
	resp := make([]InteractionResponse, 0, len(list))
	for idx := range list {
		resp = append(resp, *FromModelToInteractionResponse(&list[idx]))
	}
	return resp
}
