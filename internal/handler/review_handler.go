package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type ReviewInput struct {
	ReviewerName       string   `json:"reviewerName"`
	Rating             *float64 `json:"rating" binding:"required,min=0,max=5"`
	Comment            string   `json:"comment"`
	IsVerifiedPurchase bool     `json:"isVerifiedPurchase"`
}

// GetGameReviews godoc
// @Summary      List reviews for a game
// @Description  Returns all reviews for a game, newest first.
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {array} models.Review
// @Failure      400 {object} ErrorResponse "Invalid game ID"
// @Router       /games/{id}/reviews [get]
func (h *Handler) GetGameReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	reviews, err := h.store.ReviewsForGame(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      Submit a review
// @Description  Validates and persists a new review for an existing game.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path int         true "Game ID"
// @Param        input body ReviewInput true "Review"
// @Success      201 {object} models.Review
// @Failure      400 {object} ValidationErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Invalid review data", Fields: fieldErrors(err)})
		return
	}

	review := models.Review{
		GameID:             uint(id),
		ReviewerName:       input.ReviewerName,
		Rating:             *input.Rating,
		Comment:            input.Comment,
		IsVerifiedPurchase: input.IsVerifiedPurchase,
	}

	if err := h.store.CreateReview(c.Request.Context(), &review); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
