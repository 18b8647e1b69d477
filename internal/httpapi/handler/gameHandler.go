package handler

import (
	"net/http"
	"strconv"

	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 100
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// RegisterRoutes registers game routes. Reads are public; writes require an
// authenticated admin.
func (h *GameHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	games := rg.Group("/games")
	{
		games.GET("", h.List)
		games.GET("/recent", h.Recent)
		games.GET("/upcoming", h.Upcoming)
		games.GET("/top-rated", h.TopRated)
		games.GET("/most-popular", h.MostPopular)
		games.GET("/search", h.Search)
		games.GET("/:id", h.GetDetail)
		games.GET("/by-platform/:id", h.ByPlatform)
		games.GET("/by-developer/:id", h.ByDeveloper)
		games.GET("/by-genre/:id", h.ByGenre)

		games.POST("", requireAuth, requireAdmin, h.Create)
		games.PUT("/:id", requireAuth, requireAdmin, h.Update)
		games.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
	}
}

// GET /api/games
func (h *GameHandler) List(c *gin.Context) {
	list, err := h.gameService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/recent
func (h *GameHandler) Recent(c *gin.Context) {
	list, err := h.gameService.Recent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/upcoming
func (h *GameHandler) Upcoming(c *gin.Context) {
	list, err := h.gameService.Upcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/top-rated?limit=10
func (h *GameHandler) TopRated(c *gin.Context) {
	list, err := h.gameService.TopRated(c.Request.Context(), rankingLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/most-popular?limit=10
func (h *GameHandler) MostPopular(c *gin.Context) {
	list, err := h.gameService.MostPopular(c.Request.Context(), rankingLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/search?name=zelda
func (h *GameHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	list, err := h.gameService.Search(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/:id
func (h *GameHandler) GetDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}
	detail, err := h.gameService.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := h.gameService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// PUT /api/games/:id
func (h *GameHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}
	var req dto.CreateGameDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	detail, err := h.gameService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DELETE /api/games/:id
func (h *GameHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}
	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game deleted successfully"})
}

// GET /api/games/by-platform/:id
func (h *GameHandler) ByPlatform(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}
	list, err := h.gameService.ByPlatform(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/by-developer/:id
func (h *GameHandler) ByDeveloper(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid developer ID"})
		return
	}
	list, err := h.gameService.ByDeveloper(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/games/by-genre/:id
func (h *GameHandler) ByGenre(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid genre ID"})
		return
	}
	list, err := h.gameService.ByGenre(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// rankingLimit parses the limit query parameter, clamped to [1, 100].
func rankingLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRankingLimit)))
	if err != nil || limit < 1 {
		return defaultRankingLimit
	}
	if limit > maxRankingLimit {
		return maxRankingLimit
	}
	return limit
}
