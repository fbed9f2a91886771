package storage

import (
	"context"
	"errors"
	"strings"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

const (
	defaultFeaturedLimit = 8
	quickSearchLimit     = 10
)

// GameDetails is a game together with its reviews and the aggregate review
// statistics computed at read time.
type GameDetails struct {
	models.Game
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
}

// GameDetails fetches one game with its reviews and aggregates. Returns
// ErrNotFound when no game has the given id.
func (s *Storage) GameDetails(ctx context.Context, id uint) (*GameDetails, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviews, err := s.ReviewsForGame(ctx, id)
	if err != nil {
		return nil, err
	}

	var avg float64
	if len(reviews) > 0 {
		var sum float64
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = sum / float64(len(reviews))
	}

	return &GameDetails{
		Game:          game,
		Reviews:       reviews,
		AverageRating: avg,
		ReviewCount:   len(reviews),
	}, nil
}

// FeaturedGames returns up to limit active games by rating, best first.
func (s *Storage) FeaturedGames(ctx context.Context, limit int) ([]models.Game, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}

	games := []models.Game{}
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rating DESC").
		Order("id ASC").
		Limit(limit).
		Find(&games).Error
	return games, err
}

// QuickSearch matches the query as a case-insensitive substring of title,
// developer or publisher. Unlike the full search it skips descriptions and
// caps results at 10 with no pagination. A blank query returns an empty
// slice without hitting the database.
func (s *Storage) QuickSearch(ctx context.Context, query string) ([]models.Game, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Game{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	games := []models.Game{}
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(developer) LIKE ? OR LOWER(publisher) LIKE ?", pattern, pattern, pattern).
		Order("rating DESC").
		Order("id ASC").
		Limit(quickSearchLimit).
		Find(&games).Error
	return games, err
}

// CreateGame inserts a new catalog entry.
func (s *Storage) CreateGame(ctx context.Context, game *models.Game) error {
	return s.db.WithContext(ctx).Create(game).Error
}

// UpdateGame replaces the mutable fields of an existing game. Returns
// ErrNotFound when no game has the given id.
func (s *Storage) UpdateGame(ctx context.Context, id uint, updated models.Game) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	game.Title = updated.Title
	game.Description = updated.Description
	game.Developer = updated.Developer
	game.Publisher = updated.Publisher
	game.ReleaseDate = updated.ReleaseDate
	game.Genre = updated.Genre
	game.Platform = updated.Platform
	game.Rating = updated.Rating
	game.Price = updated.Price
	game.ImageURL = updated.ImageURL
	game.ESRBRating = updated.ESRBRating
	game.Metascore = updated.Metascore
	game.UserScore = updated.UserScore

	if err := s.db.WithContext(ctx).Save(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame soft-deletes a game by clearing its active flag. Reviews are
// kept; they stay readable through the review endpoints. Returns
// ErrNotFound when no game has the given id.
func (s *Storage) DeleteGame(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
