package storage

import (
	"context"
	"strings"
	"time"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// SearchParams is the full configuration of a catalog search. The binding
// tags make gin reject a request atomically when any parameter is malformed
// or out of range, so no partial filter set is ever applied.
type SearchParams struct {
	Search    string   `form:"search"`
	Genre     string   `form:"genre"`
	Platform  string   `form:"platform"`
	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
	MaxRating *float64 `form:"maxRating" binding:"omitempty,min=0,max=5"`
	YearFrom  *int     `form:"yearFrom" binding:"omitempty,min=1970,max=2030"`
	YearTo    *int     `form:"yearTo" binding:"omitempty,min=1970,max=2030"`
	SortBy    string   `form:"sortBy" binding:"omitempty,oneof=title releaseDate rating popularity"`
	SortOrder string   `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Page      int      `form:"page" binding:"omitempty,min=1"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Games returns the page of active games matching params together with the
// total match count before pagination.
func (s *Storage) Games(ctx context.Context, params SearchParams) ([]models.Game, int64, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	// Separate count and data queries over the same predicate set, so the
	// total reflects all matches regardless of pagination.
	var total int64
	if err := s.filteredGames(ctx, params).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	games := []models.Game{}
	err := s.filteredGames(ctx, params).
		Order(orderClause(params.SortBy, params.SortOrder)).
		Order("id ASC"). // stable tiebreak keeps pagination reproducible
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

// filteredGames builds the shared WHERE clause for a search. Only active
// games are ever visible, no matter what filters are set.
func (s *Storage) filteredGames(ctx context.Context, params SearchParams) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Game{}).Where("is_active = ?", true)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(developer) LIKE ? OR LOWER(publisher) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if params.Genre != "" {
		q = q.Where("genre = ?", params.Genre)
	}
	if params.Platform != "" {
		q = q.Where("platform = ?", params.Platform)
	}

	if params.MinRating != nil {
		q = q.Where("rating >= ?", *params.MinRating)
	}
	if params.MaxRating != nil {
		q = q.Where("rating <= ?", *params.MaxRating)
	}

	// Year bounds as half-open date ranges; portable across Postgres and
	// sqlite, unlike EXTRACT(YEAR ...).
	if params.YearFrom != nil {
		q = q.Where("release_date >= ?", time.Date(*params.YearFrom, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	if params.YearTo != nil {
		q = q.Where("release_date < ?", time.Date(*params.YearTo+1, 1, 1, 0, 0, 0, 0, time.UTC))
	}

	return q
}

// orderClause maps a sort key to its ORDER BY expression. "popularity" has
// no backing column; it is defined as the game's review count.
func orderClause(sortBy, sortOrder string) string {
	dir := "ASC"
	if sortOrder == "desc" {
		dir = "DESC"
	}

	switch sortBy {
	case "releaseDate":
		return "release_date " + dir
	case "rating":
		return "rating " + dir
	case "popularity":
		return "(SELECT COUNT(*) FROM game_reviews WHERE game_reviews.game_id = games.id) " + dir
	default:
		return "title " + dir
	}
}
