package storage

import (
	"context"
	"errors"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// ReviewsForGame returns all reviews for a game, newest first. The lookup
// ignores the game's active flag: reviews of a soft-deleted game remain
// readable.
func (s *Storage) ReviewsForGame(ctx context.Context, gameID uint) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}

// CreateReview persists a review for an existing game. The game id is
// checked up front so a bad reference surfaces as ErrNotFound instead of a
// storage constraint error.
func (s *Storage) CreateReview(ctx context.Context, review *models.Review) error {
	var exists models.Game
	err := s.db.WithContext(ctx).Select("id").First(&exists, review.GameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Create(review).Error
}
