package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGameService mocks the GameService interface
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) List(ctx context.Context) ([]dto.GameSummaryResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) Recent(ctx context.Context) ([]dto.GameSummaryResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) Upcoming(ctx context.Context) ([]dto.GameSummaryResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) TopRated(ctx context.Context, limit int) ([]dto.GameSummaryResponse, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) MostPopular(ctx context.Context, limit int) ([]dto.GameSummaryResponse, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) Search(ctx context.Context, name string) ([]dto.GameSummaryResponse, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) GetDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameDetailResponse), args.Error(1)
}

func (m *MockGameService) Create(ctx context.Context, in dto.CreateGameDTO) (*dto.GameDetailResponse, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameDetailResponse), args.Error(1)
}

func (m *MockGameService) Update(ctx context.Context, id int64, in dto.CreateGameDTO) (*dto.GameDetailResponse, error) {
	args := m.Called(id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameDetailResponse), args.Error(1)
}

func (m *MockGameService) Delete(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGameService) ByPlatform(ctx context.Context, platformID int64) ([]dto.GameSummaryResponse, error) {
	args := m.Called(platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) ByDeveloper(ctx context.Context, developerID int64) ([]dto.GameSummaryResponse, error) {
	args := m.Called(developerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func (m *MockGameService) ByGenre(ctx context.Context, genreID int64) ([]dto.GameSummaryResponse, error) {
	args := m.Called(genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GameSummaryResponse), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func TestListGames_Success(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	score := 9.0
	mockService.On("List").Return([]dto.GameSummaryResponse{
		{ID: 1, Name: "Game One", AvgScore: &score},
		{ID: 2, Name: "Game Two"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/games", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.GameSummaryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	assert.Equal(t, "Game One", response[0].Name)

	mockService.AssertExpectations(t)
}

func TestGetGameDetail_NotFound(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	mockService.On("GetDetail", int64(42)).Return(nil, apperrors.NewNotFound("Game", int64(42)))

	req, _ := http.NewRequest("GET", "/api/games/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetGameDetail_InvalidID(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	req, _ := http.NewRequest("GET", "/api/games/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGame_Success(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	in := dto.CreateGameDTO{
		Name:         "New Game",
		Description:  "desc",
		CoverURL:     "https://cdn.example.com/c.jpg",
		ReleaseDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		PlatformIDs:  []int64{1},
		DeveloperIDs: []int64{2},
		GenreIDs:     []int64{3},
	}
	mockService.On("Create", in).Return(&dto.GameDetailResponse{ID: 7, Name: "New Game"}, nil)

	body, _ := json.Marshal(in)
	req, _ := http.NewRequest("POST", "/api/games", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.GameDetailResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(7), response.ID)

	mockService.AssertExpectations(t)
}

func TestCreateGame_MissingAssociations(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	// No platform/developer/genre ids: binding rejects it before the
	// service is ever consulted.
	body := []byte(`{"name":"x","description":"y","cover_url":"z","release_date":"2024-05-01T00:00:00Z"}`)
	req, _ := http.NewRequest("POST", "/api/games", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestTopRated_LimitClamped(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	mockService.On("TopRated", 100).Return([]dto.GameSummaryResponse{}, nil)

	req, _ := http.NewRequest("GET", "/api/games/top-rated?limit=5000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSearch_RequiresName(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	req, _ := http.NewRequest("GET", "/api/games/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search")
}

func TestDeleteGame_Success(t *testing.T) {
	mockService := new(MockGameService)
	handler := NewGameHandler(mockService)
	router := setupRouter()
	handler.RegisterRoutes(router.Group("/api"), passthrough(), passthrough())

	mockService.On("Delete", int64(7)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/games/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
