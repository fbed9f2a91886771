package handler

import (
	"net/http"

	"gamevault/backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler owns the HTTP endpoints and their backing storage.
type Handler struct {
	store *storage.Storage
}

// New creates a Handler over the given storage.
func New(store *storage.Storage) *Handler {
	return &Handler{store: store}
}

// Router builds the gin engine with all API routes registered.
func Router(h *Handler) *gin.Engine {
	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	{
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", h.ListGames)
			gameRoutes.GET("/featured", h.GetFeaturedGames) // Must be before /:id
			gameRoutes.GET("/search", h.QuickSearch)
			gameRoutes.GET("/:id", h.GetGameByID)
			gameRoutes.GET("/:id/reviews", h.GetGameReviews)
			gameRoutes.POST("/:id/reviews", h.CreateReview)

			// Catalog administration (no auth by design)
			gameRoutes.POST("", h.CreateGame)
			gameRoutes.PUT("/:id", h.UpdateGame)
			gameRoutes.DELETE("/:id", h.DeleteGame)
		}

		genreRoutes := api.Group("/genres")
		{
			genreRoutes.GET("", h.GetGenres)
			genreRoutes.POST("", h.CreateGenre)
		}

		platformRoutes := api.Group("/platforms")
		{
			platformRoutes.GET("", h.GetPlatforms)
			platformRoutes.POST("", h.CreatePlatform)
		}

		api.GET("/stats", h.GetStats)
	}

	return router
}
