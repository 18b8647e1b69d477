package service

import (
	"testing"
	"time"

	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedGame(t *testing.T) int64 {
	t.Helper()
	platformIDs, devID, genreID := e.seedCatalog(t)
	detail, err := e.games.Create(testCtx(), createGameDTO("Game", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), platformIDs[:1], devID, genreID))
	require.NoError(t, err)
	return detail.ID
}

func TestInteractionService_CreateWithScore(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	userID := env.seedUser(t, "alice")

	resp, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{
		GameID: gameID,
		Score:  intPtr(8),
		Played: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 8, *resp.Score)
	assert.Equal(t, userID, resp.UserID)
}

func TestInteractionService_CreateWithoutScore(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	userID := env.seedUser(t, "alice")

	resp, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{
		GameID: gameID,
		Played: true,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Score)
}

func TestInteractionService_ScoreBounds(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)

	for _, tc := range []struct {
		name  string
		score int
		valid bool
	}{
		{"below minimum", 0, false},
		{"at minimum", 1, true},
		{"at maximum", 10, true},
		{"above maximum", 11, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			userID := env.seedUser(t, "user-"+tc.name)
			_, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{
				GameID: gameID,
				Score:  intPtr(tc.score),
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
			}
		})
	}
}

func TestInteractionService_DuplicatePair(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	userID := env.seedUser(t, "alice")

	_, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(7)})
	require.NoError(t, err)

	_, err = env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(9)})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestInteractionService_CreateForUnknownGame(t *testing.T) {
	env := newTestEnv(t)
	userID := env.seedUser(t, "alice")

	_, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: 999, Score: intPtr(5)})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInteractionService_UpdateByOwner(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	userID := env.seedUser(t, "alice")

	created, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(5)})
	require.NoError(t, err)

	updated, err := env.interactions.Update(testCtx(), created.ID, userID, false, dto.CreateInteractionDTO{
		GameID: gameID,
		Score:  intPtr(9),
		Review: strPtr("changed my mind"),
		Played: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, *updated.Score)
	assert.Equal(t, "changed my mind", *updated.Review)
}

func TestInteractionService_UpdateByStrangerForbidden(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	owner := env.seedUser(t, "alice")
	stranger := env.seedUser(t, "mallory")

	created, err := env.interactions.Create(testCtx(), owner, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(5)})
	require.NoError(t, err)

	_, err = env.interactions.Update(testCtx(), created.ID, stranger, false, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestInteractionService_DeleteByAdmin(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	owner := env.seedUser(t, "alice")
	admin := env.seedUser(t, "root")

	created, err := env.interactions.Create(testCtx(), owner, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(5)})
	require.NoError(t, err)

	require.NoError(t, env.interactions.Delete(testCtx(), created.ID, admin, true))

	_, err = env.interactions.GetByID(testCtx(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInteractionService_DeleteByStrangerForbidden(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	owner := env.seedUser(t, "alice")
	stranger := env.seedUser(t, "mallory")

	created, err := env.interactions.Create(testCtx(), owner, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(5)})
	require.NoError(t, err)

	err = env.interactions.Delete(testCtx(), created.ID, stranger, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestInteractionService_GetByUserAndGame(t *testing.T) {
	env := newTestEnv(t)
	gameID := env.seedGame(t)
	userID := env.seedUser(t, "alice")

	_, err := env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: gameID, Score: intPtr(6), Played: true})
	require.NoError(t, err)

	resp, err := env.interactions.GetByUserAndGame(testCtx(), userID, gameID)
	require.NoError(t, err)
	assert.Equal(t, gameID, resp.GameID)
	assert.True(t, resp.Played)

	_, err = env.interactions.GetByUserAndGame(testCtx(), userID, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInteractionService_PlayedFilter(t *testing.T) {
	env := newTestEnv(t)
	platformIDs, devID, genreID := env.seedCatalog(t)
	released := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

	g1, err := env.games.Create(testCtx(), createGameDTO("Played Game", released, platformIDs[:1], devID, genreID))
	require.NoError(t, err)
	g2, err := env.games.Create(testCtx(), createGameDTO("Wishlist Game", released, platformIDs[:1], devID, genreID))
	require.NoError(t, err)

	userID := env.seedUser(t, "alice")
	_, err = env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: g1.ID, Score: intPtr(8), Played: true})
	require.NoError(t, err)
	_, err = env.interactions.Create(testCtx(), userID, dto.CreateInteractionDTO{GameID: g2.ID, Played: false})
	require.NoError(t, err)

	played, err := env.interactions.GetPlayedByUser(testCtx(), userID)
	require.NoError(t, err)
	require.Len(t, played, 1)
	assert.Equal(t, g1.ID, played[0].GameID)
}

func strPtr(s string) *string { return &s }
