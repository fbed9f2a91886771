package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Developer   string     `json:"developer"`
	Publisher   string     `json:"publisher"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Genre       string     `json:"genre" binding:"required"`
	Platform    string     `json:"platform" binding:"required"`
	Rating      *float64   `json:"rating" binding:"omitempty,min=0,max=5"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
	ImageURL    string     `json:"imageUrl"`
	ESRBRating  string     `json:"esrbRating"`
	Metascore   *int       `json:"metascore" binding:"omitempty,min=0,max=100"`
	UserScore   *float64   `json:"userScore"`
}

func (in GameInput) toModel() models.Game {
	return models.Game{
		Title:       in.Title,
		Description: in.Description,
		Developer:   in.Developer,
		Publisher:   in.Publisher,
		ReleaseDate: in.ReleaseDate,
		Genre:       in.Genre,
		Platform:    in.Platform,
		Rating:      in.Rating,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		ESRBRating:  in.ESRBRating,
		Metascore:   in.Metascore,
		UserScore:   in.UserScore,
		IsActive:    true,
	}
}

// GameListResponse is the search result envelope: one page of games plus
// the total match count, from which callers derive the page count.
type GameListResponse struct {
	Games []models.Game `json:"games"`
	Total int64         `json:"total"`
}

// endregion

// region --- Read Handlers ---

// ListGames godoc
// @Summary      Search the game catalog
// @Description  Returns a filtered, sorted, paginated page of active games plus the total match count.
// @Tags         games
// @Produce      json
// @Param        search    query  string  false  "Substring matched against title, description, developer and publisher"
// @Param        genre     query  string  false  "Exact genre label"
// @Param        platform  query  string  false  "Exact platform label"
// @Param        minRating query  number  false  "Inclusive lower rating bound (0-5)"
// @Param        maxRating query  number  false  "Inclusive upper rating bound (0-5)"
// @Param        yearFrom  query  int     false  "Inclusive lower release-year bound (1970-2030)"
// @Param        yearTo    query  int     false  "Inclusive upper release-year bound (1970-2030)"
// @Param        sortBy    query  string  false  "title | releaseDate | rating | popularity"  default(title)
// @Param        sortOrder query  string  false  "asc | desc"  default(asc)
// @Param        page      query  int     false  "Page number"  default(1)
// @Param        limit     query  int     false  "Page size (1-100)"  default(12)
// @Success      200  {object}  GameListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	var params storage.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search parameters: " + err.Error()})
		return
	}

	games, total, err := h.store.Games(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	c.JSON(http.StatusOK, GameListResponse{Games: games, Total: total})
}

// GetFeaturedGames godoc
// @Summary      Get featured games
// @Description  Returns the highest-rated active games.
// @Tags         games
// @Produce      json
// @Param        limit query int false "Maximum number of games" default(8)
// @Success      200 {array} models.Game
// @Router       /games/featured [get]
func (h *Handler) GetFeaturedGames(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "8"))
	if err != nil || limit < 1 {
		limit = 8
	}

	games, err := h.store.FeaturedGames(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured games"})
		return
	}

	c.JSON(http.StatusOK, games)
}

// QuickSearch godoc
// @Summary      Quick search
// @Description  Returns up to 10 active games whose title, developer or publisher contains the query.
// @Tags         games
// @Produce      json
// @Param        q query string true "Search text"
// @Success      200 {array} models.Game
// @Failure      400 {object} ErrorResponse
// @Router       /games/search [get]
func (h *Handler) QuickSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	games, err := h.store.QuickSearch(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGameByID godoc
// @Summary      Get a single game
// @Description  Returns a game with its reviews, average rating and review count.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} storage.GameDetails
// @Failure      400 {object} ErrorResponse "Invalid game ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	details, err := h.store.GameDetails(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Adds a game to the catalog.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid game data", Fields: fieldErrors(err)})
		return
	}

	game := input.toModel()
	if err := h.store.CreateGame(c.Request.Context(), &game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces a game's details.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  models.Game
// @Failure      400   {object}  ValidationErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid game data", Fields: fieldErrors(err)})
		return
	}

	game, err := h.store.UpdateGame(c.Request.Context(), uint(id), input.toModel())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Soft-deletes a game; it disappears from listings but its reviews are kept.
// @Tags         admin-games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.store.DeleteGame(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion
