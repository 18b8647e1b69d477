package handler

import (
	"net/http"
	"strconv"

	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/middleware"
	"gamerate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionService service.InteractionService
}

func NewInteractionHandler(interactionService service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// RegisterRoutes registers interaction routes. Reading a game's reviews is
// public; everything else requires authentication, and the global listing is
// admin only.
func (h *InteractionHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	interactions := rg.Group("/interactions")
	{
		interactions.GET("/game/:game_id", h.ListByGame)

		interactions.GET("", requireAuth, requireAdmin, h.ListAll)
		interactions.POST("", requireAuth, h.Create)
		interactions.GET("/me", requireAuth, h.ListMine)
		interactions.GET("/me/played", requireAuth, h.ListMinePlayed)
		interactions.GET("/me/game/:game_id", requireAuth, h.GetMineForGame)
		interactions.GET("/:id", requireAuth, h.GetByID)
		interactions.PUT("/:id", requireAuth, h.Update)
		interactions.DELETE("/:id", requireAuth, h.Delete)
	}
}

// POST /api/interactions
func (h *InteractionHandler) Create(c *gin.Context) {
	userID, _, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateInteractionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.interactionService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PUT /api/interactions/:id
func (h *InteractionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interaction ID"})
		return
	}
	userID, isAdmin, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateInteractionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.interactionService.Update(c.Request.Context(), id, userID, isAdmin, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/interactions/:id
func (h *InteractionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interaction ID"})
		return
	}
	userID, isAdmin, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.interactionService.Delete(c.Request.Context(), id, userID, isAdmin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "interaction deleted successfully"})
}

// GET /api/interactions/:id
func (h *InteractionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interaction ID"})
		return
	}
	resp, err := h.interactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/interactions
func (h *InteractionHandler) ListAll(c *gin.Context) {
	list, err := h.interactionService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/interactions/game/:game_id
func (h *InteractionHandler) ListByGame(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}
	list, err := h.interactionService.GetByGame(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/interactions/me
func (h *InteractionHandler) ListMine(c *gin.Context) {
	userID, _, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	list, err := h.interactionService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/interactions/me/played
func (h *InteractionHandler) ListMinePlayed(c *gin.Context) {
	userID, _, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	list, err := h.interactionService.GetPlayedByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/interactions/me/game/:game_id
func (h *InteractionHandler) GetMineForGame(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game ID"})
		return
	}
	userID, _, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	resp, err := h.interactionService.GetByUserAndGame(c.Request.Context(), userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
