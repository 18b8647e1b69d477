package service

import (
	"context"
	"errors"

	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/models"
	"gamerate/internal/httpapi/repository"

	"gorm.io/gorm"
)

const (
	minScore = 1
	maxScore = 10
)

type InteractionService interface {
	Create(ctx context.Context, userID int64, in dto.CreateInteractionDTO) (*dto.InteractionResponse, error)
	Update(ctx context.Context, id, callerID int64, callerIsAdmin bool, in dto.CreateInteractionDTO) (*dto.InteractionResponse, error)
	Delete(ctx context.Context, id, callerID int64, callerIsAdmin bool) error
	GetByID(ctx context.Context, id int64) (*dto.InteractionResponse, error)
	GetAll(ctx context.Context) ([]dto.InteractionResponse, error)
	GetByUser(ctx context.Context, userID int64) ([]dto.InteractionResponse, error)
	GetByGame(ctx context.Context, gameID int64) ([]dto.InteractionResponse, error)
	GetByUserAndGame(ctx context.Context, userID, gameID int64) (*dto.InteractionResponse, error)
	GetPlayedByUser(ctx context.Context, userID int64) ([]dto.InteractionResponse, error)
}

// interactionService enforces the scoring rules. It deliberately never
// touches the view cache: rating writes leave cached listings stale until
// the TTL expires.
type interactionService struct {
	interactions repository.InteractionRepository
	games        *repository.GameRepo
}

func NewInteractionService(interactions repository.InteractionRepository, games *repository.GameRepo) InteractionService {
	return &interactionService{interactions: interactions, games: games}
}

// validateScore accepts an absent score or one in [1, 10].
func validateScore(score *int) error {
	if score == nil {
		return nil
	}
	if *score < minScore || *score > maxScore {
		return apperrors.NewBusinessRule("score must be between 1 and 10")
	}
	return nil
}

// canModify is the ownership check for interaction writes: the owner or an
// admin may touch the row, nobody else.
func canModify(ownerID, callerID int64, callerIsAdmin bool) bool {
	return callerIsAdmin || ownerID == callerID
}

func (s *interactionService) Create(ctx context.Context, userID int64, in dto.CreateInteractionDTO) (*dto.InteractionResponse, error) {
	if err := validateScore(in.Score); err != nil {
		return nil, err
	}

	exists, err := s.games.ExistsByID(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Game", in.GameID)
	}

	taken, err := s.interactions.ExistsByUserAndGame(ctx, userID, in.GameID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicate("Interaction", "game_id", in.GameID)
	}

	interaction := &models.Interaction{
		UserID: userID,
		GameID: in.GameID,
		Score:  in.Score,
		Review: in.Review,
		Played: in.Played,
	}
	if err := s.interactions.Create(ctx, interaction); err != nil {
		// Concurrent submits can both pass the pre-check; the unique
		// index catches the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicate("Interaction", "game_id", in.GameID)
		}
		return nil, err
	}
	return dto.FromModelToInteractionResponse(interaction), nil
}

// Update replaces score, review and played on an existing interaction. The
// game binding is immutable; changing games means a new interaction.
func (s *interactionService) Update(ctx context.Context, id, callerID int64, callerIsAdmin bool, in dto.CreateInteractionDTO) (*dto.InteractionResponse, error) {
	if err := validateScore(in.Score); err != nil {
		return nil, err
	}

	interaction, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Interaction", id)
		}
		return nil, err
	}
	if !canModify(interaction.UserID, callerID, callerIsAdmin) {
		return nil, apperrors.NewForbidden("only the owner or an admin may modify an interaction")
	}

	interaction.Score = in.Score
	interaction.Review = in.Review
	interaction.Played = in.Played
	if err := s.interactions.Update(ctx, interaction); err != nil {
		return nil, err
	}
	return dto.FromModelToInteractionResponse(interaction), nil
}

func (s *interactionService) Delete(ctx context.Context, id, callerID int64, callerIsAdmin bool) error {
	interaction, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Interaction", id)
		}
		return err
	}
	if !canModify(interaction.UserID, callerID, callerIsAdmin) {
		return apperrors.NewForbidden("only the owner or an admin may delete an interaction")
	}

	if err := s.interactions.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Interaction", id)
		}
		return err
	}
	return nil
}

func (s *interactionService) GetByID(ctx context.Context, id int64) (*dto.InteractionResponse, error) {
	interaction, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Interaction", id)
		}
		return nil, err
	}
	return dto.FromModelToInteractionResponse(interaction), nil
}

func (s *interactionService) GetAll(ctx context.Context) ([]dto.InteractionResponse, error) {
	list, err := s.interactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToInteractionResponse(list), nil
}

func (s *interactionService) GetByUser(ctx context.Context, userID int64) ([]dto.InteractionResponse, error) {
	list, err := s.interactions.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToInteractionResponse(list), nil
}

func (s *interactionService) GetByGame(ctx context.Context, gameID int64) ([]dto.InteractionResponse, error) {
	list, err := s.interactions.GetByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToInteractionResponse(list), nil
}

func (s *interactionService) GetByUserAndGame(ctx context.Context, userID, gameID int64) (*dto.InteractionResponse, error) {
	interaction, err := s.interactions.GetByUserAndGame(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Interaction", gameID)
		}
		return nil, err
	}
	return dto.FromModelToInteractionResponse(interaction), nil
}

func (s *interactionService) GetPlayedByUser(ctx context.Context, userID int64) ([]dto.InteractionResponse, error) {
	list, err := s.interactions.GetPlayedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToInteractionResponse(list), nil
}
