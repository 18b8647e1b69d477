package handler

import (
	"net/http"
	"strconv"

	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformService service.PlatformService
}

func NewPlatformHandler(platformService service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

func (h *PlatformHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	platforms := rg.Group("/platforms")
	{
		platforms.GET("", h.List)
		platforms.GET("/by-year", h.ListByYear)
		platforms.GET("/search", h.Search)
		platforms.GET("/manufacturer/:manufacturer", h.ListByManufacturer)
		platforms.GET("/:id", h.GetByID)

		platforms.POST("", requireAuth, requireAdmin, h.Create)
		platforms.PUT("/:id", requireAuth, requireAdmin, h.Update)
		platforms.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
	}
}

// GET /api/platforms
func (h *PlatformHandler) List(c *gin.Context) {
	list, err := h.platformService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/platforms/by-year
func (h *PlatformHandler) ListByYear(c *gin.Context) {
	list, err := h.platformService.GetAllOrderByYearDesc(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/platforms/search?name=switch
func (h *PlatformHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	list, err := h.platformService.SearchByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/platforms/manufacturer/:manufacturer
func (h *PlatformHandler) ListByManufacturer(c *gin.Context) {
	list, err := h.platformService.GetByManufacturer(c.Request.Context(), c.Param("manufacturer"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/platforms/:id
func (h *PlatformHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}
	resp, err := h.platformService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/platforms
func (h *PlatformHandler) Create(c *gin.Context) {
	var req dto.CreatePlatformDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.platformService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PUT /api/platforms/:id
func (h *PlatformHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}
	var req dto.CreatePlatformDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.platformService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/platforms/:id
func (h *PlatformHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform ID"})
		return
	}
	if err := h.platformService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "platform deleted successfully"})
}
