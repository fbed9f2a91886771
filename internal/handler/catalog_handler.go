package handler

import (
	"net/http"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type GenreInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PlatformInput struct {
	Name         string `json:"name" binding:"required"`
	Manufacturer string `json:"manufacturer"`
	ReleaseYear  *int   `json:"releaseYear"`
}

// GetGenres godoc
// @Summary      List genres
// @Description  Returns all genres sorted by name.
// @Tags         catalog
// @Produce      json
// @Success      200 {array} models.Genre
// @Router       /genres [get]
func (h *Handler) GetGenres(c *gin.Context) {
	genres, err := h.store.Genres(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch genres"})
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GetPlatforms godoc
// @Summary      List platforms
// @Description  Returns all platforms sorted by name.
// @Tags         catalog
// @Produce      json
// @Success      200 {array} models.Platform
// @Router       /platforms [get]
func (h *Handler) GetPlatforms(c *gin.Context) {
	platforms, err := h.store.Platforms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platforms"})
		return
	}
	c.JSON(http.StatusOK, platforms)
}

// CreateGenre godoc
// @Summary      Create a genre
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        input body GenreInput true "Genre Info"
// @Success      201 {object} models.Genre
// @Failure      400 {object} ValidationErrorResponse
// @Failure      409 {object} ErrorResponse "Genre already exists"
// @Router       /genres [post]
func (h *Handler) CreateGenre(c *gin.Context) {
	var input GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid genre data", Fields: fieldErrors(err)})
		return
	}

	genre := models.Genre{Name: input.Name, Description: input.Description}
	if err := h.store.CreateGenre(c.Request.Context(), &genre); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Genre already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusCreated, genre)
}

// CreatePlatform godoc
// @Summary      Create a platform
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        input body PlatformInput true "Platform Info"
// @Success      201 {object} models.Platform
// @Failure      400 {object} ValidationErrorResponse
// @Failure      409 {object} ErrorResponse "Platform already exists"
// @Router       /platforms [post]
func (h *Handler) CreatePlatform(c *gin.Context) {
	var input PlatformInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid platform data", Fields: fieldErrors(err)})
		return
	}

	platform := models.Platform{Name: input.Name, Manufacturer: input.Manufacturer, ReleaseYear: input.ReleaseYear}
	if err := h.store.CreatePlatform(c.Request.Context(), &platform); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Platform already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusCreated, platform)
}

// GetStats godoc
// @Summary      Catalog statistics
// @Description  Returns counts of active games, genres and platforms.
// @Tags         catalog
// @Produce      json
// @Success      200 {object} storage.Stats
// @Router       /stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
