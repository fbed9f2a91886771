package storage

import (
	"context"

	"gamevault/backend/internal/models"
)

// Stats summarizes the catalog for the landing page.
type Stats struct {
	TotalGames     int64 `json:"totalGames"`
	TotalGenres    int64 `json:"totalGenres"`
	TotalPlatforms int64 `json:"totalPlatforms"`
}

// Genres lists all genres sorted by name.
func (s *Storage) Genres(ctx context.Context) ([]models.Genre, error) {
	genres := []models.Genre{}
	err := s.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, err
}

// Platforms lists all platforms sorted by name.
func (s *Storage) Platforms(ctx context.Context) ([]models.Platform, error) {
	platforms := []models.Platform{}
	err := s.db.WithContext(ctx).Order("name ASC").Find(&platforms).Error
	return platforms, err
}

// CreateGenre inserts a new genre. Names are unique.
func (s *Storage) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return s.db.WithContext(ctx).Create(genre).Error
}

// CreatePlatform inserts a new platform. Names are unique.
func (s *Storage) CreatePlatform(ctx context.Context, platform *models.Platform) error {
	return s.db.WithContext(ctx).Create(platform).Error
}

// Stats counts active games plus all genres and platforms, as three
// independent aggregate queries.
func (s *Storage) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := s.db.WithContext(ctx).Model(&models.Game{}).Where("is_active = ?", true).Count(&stats.TotalGames).Error; err != nil {
		return stats, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Genre{}).Count(&stats.TotalGenres).Error; err != nil {
		return stats, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Platform{}).Count(&stats.TotalPlatforms).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

// SyncCatalog makes sure every genre and platform label observed on a game
// has a matching catalog row. Labels are created on first observation and
// never deleted.
func (s *Storage) SyncCatalog(ctx context.Context) error {
	var genreNames []string
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Distinct("genre").Pluck("genre", &genreNames).Error; err != nil {
		return err
	}
	for _, name := range genreNames {
		if name == "" {
			continue
		}
		genre := models.Genre{Name: name}
		if err := s.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&genre).Error; err != nil {
			return err
		}
	}

	var platformNames []string
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Distinct("platform").Pluck("platform", &platformNames).Error; err != nil {
		return err
	}
	for _, name := range platformNames {
		if name == "" {
			continue
		}
		platform := models.Platform{Name: name}
		if err := s.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&platform).Error; err != nil {
			return err
		}
	}

	return nil
}
