package handler

import (
	"net/http"
	"strconv"

	"gamerate/internal/httpapi/dto"
	"gamerate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type DeveloperHandler struct {
	developerService service.DeveloperService
}

func NewDeveloperHandler(developerService service.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{developerService: developerService}
}

func (h *DeveloperHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	developers := rg.Group("/developers")
	{
		developers.GET("", h.List)
		developers.GET("/search", h.Search)
		developers.GET("/country/:country", h.ListByCountry)
		developers.GET("/:id", h.GetByID)

		developers.POST("", requireAuth, requireAdmin, h.Create)
		developers.PUT("/:id", requireAuth, requireAdmin, h.Update)
		developers.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
	}
}

// GET /api/developers
func (h *DeveloperHandler) List(c *gin.Context) {
	list, err := h.developerService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/developers/search?name=nintendo
func (h *DeveloperHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	list, err := h.developerService.SearchByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/developers/country/:country
func (h *DeveloperHandler) ListByCountry(c *gin.Context) {
	list, err := h.developerService.GetByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/developers/:id
func (h *DeveloperHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid developer ID"})
		return
	}
	resp, err := h.developerService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/developers
func (h *DeveloperHandler) Create(c *gin.Context) {
	var req dto.CreateDeveloperDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.developerService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PUT /api/developers/:id
func (h *DeveloperHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid developer ID"})
		return
	}
	var req dto.CreateDeveloperDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.developerService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/developers/:id
func (h *DeveloperHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid developer ID"})
		return
	}
	if err := h.developerService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "developer deleted successfully"})
}
