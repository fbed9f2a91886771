package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStorage prepares a Storage over an in-memory sqlite database.
func newTestStorage(t *testing.T) (*Storage, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db), db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func game(title, genre, platform string, rating float64) *models.Game {
	return &models.Game{
		Title:    title,
		Genre:    genre,
		Platform: platform,
		Rating:   &rating,
		IsActive: true,
	}
}

func titles(games []models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Title
	}
	return out
}

func TestGamesDefaultListing(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("Zelda", "Adventure", "Switch", 4.8))
	mustCreate(t, db, game("Anthem", "Shooter", "PC", 2.9))
	mustCreate(t, db, game("Mario", "Platformer", "Switch", 4.5))
	hidden := game("Hidden", "Shooter", "PC", 4.0)
	hidden.IsActive = false
	mustCreate(t, db, hidden)

	games, total, err := s.Games(ctx, SearchParams{})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	got := titles(games)
	want := []string{"Anthem", "Mario", "Zelda"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected title order %v, got %v", want, got)
		}
	}
}

func TestGamesSearchMatchesAllTextFields(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	byTitle := game("Starfall", "RPG", "PC", 4.0)
	byDesc := game("Other", "RPG", "PC", 4.0)
	byDesc.Description = "A STARFALL-themed epic"
	byDev := game("Another", "RPG", "PC", 4.0)
	byDev.Developer = "starfall studios"
	byPub := game("Third", "RPG", "PC", 4.0)
	byPub.Publisher = "House of Starfall"
	miss := game("Unrelated", "RPG", "PC", 4.0)
	for _, g := range []*models.Game{byTitle, byDesc, byDev, byPub, miss} {
		mustCreate(t, db, g)
	}

	_, total, err := s.Games(ctx, SearchParams{Search: "sTaRfAlL"})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 matches across text fields, got %d", total)
	}
}

func TestGamesGenreSortScenario(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("Alpha", "RPG", "PC", 3.0))
	mustCreate(t, db, game("Beta", "Action", "PC", 4.5))
	mustCreate(t, db, game("Gamma", "Action", "PC", 4.5))

	params := SearchParams{Genre: "Action", SortBy: "rating", SortOrder: "desc"}

	first, total, err := s.Games(ctx, params)
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 items, got %d", len(first))
	}
	got := map[string]bool{first[0].Title: true, first[1].Title: true}
	if !got["Beta"] || !got["Gamma"] {
		t.Fatalf("expected Beta and Gamma, got %v", titles(first))
	}

	// Tie on rating must break deterministically across repeated calls.
	for i := 0; i < 5; i++ {
		again, _, err := s.Games(ctx, params)
		if err != nil {
			t.Fatalf("Games: %v", err)
		}
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("order changed between calls: %v then %v", titles(first), titles(again))
			}
		}
	}
}

func TestGamesRatingBoundsInclusive(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("Low", "RPG", "PC", 2.0))
	mustCreate(t, db, game("Mid", "RPG", "PC", 3.5))
	mustCreate(t, db, game("High", "RPG", "PC", 5.0))

	min, max := 2.0, 3.5
	games, total, err := s.Games(ctx, SearchParams{MinRating: &min, MaxRating: &max})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected games at both bounds included, total 2, got %d (%v)", total, titles(games))
	}
}

func TestGamesYearBounds(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	dates := map[string]time.Time{
		"Old":    time.Date(1998, 6, 1, 0, 0, 0, 0, time.UTC),
		"Edge":   time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC),
		"Middle": time.Date(2019, 5, 10, 0, 0, 0, 0, time.UTC),
		"New":    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for title, d := range dates {
		g := game(title, "RPG", "PC", 4.0)
		dd := d
		g.ReleaseDate = &dd
		mustCreate(t, db, g)
	}

	from, to := 2017, 2019
	games, total, err := s.Games(ctx, SearchParams{YearFrom: &from, YearTo: &to})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected Edge and Middle within 2017-2019, got %d (%v)", total, titles(games))
	}
}

func TestGamesNoMatches(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("Alpha", "RPG", "PC", 3.0))

	games, total, err := s.Games(ctx, SearchParams{Genre: "Horror"})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 0 || len(games) != 0 {
		t.Fatalf("expected no matches, got total=%d items=%d", total, len(games))
	}
}

func TestGamesPaginationCoversAllRows(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E"}
	for _, n := range names {
		mustCreate(t, db, game(n, "RPG", "PC", 4.0))
	}

	limit := 2
	seen := map[uint]bool{}
	for page := 1; page <= 3; page++ {
		games, total, err := s.Games(ctx, SearchParams{Page: page, Limit: limit})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if total != 5 {
			t.Fatalf("page %d: expected total 5, got %d", page, total)
		}
		if len(games) > limit {
			t.Fatalf("page %d: %d items exceeds limit %d", page, len(games), limit)
		}
		for _, g := range games {
			if seen[g.ID] {
				t.Fatalf("game %d appeared on more than one page", g.ID)
			}
			seen[g.ID] = true
		}
	}
	if len(seen) != 5 {
		t.Fatalf("expected pages to cover all 5 games, saw %d", len(seen))
	}

	// A page past the end is empty but keeps the true total.
	games, total, err := s.Games(ctx, SearchParams{Page: 99, Limit: limit})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if len(games) != 0 || total != 5 {
		t.Fatalf("expected empty page with total 5, got items=%d total=%d", len(games), total)
	}
}

func TestGamesPopularitySort(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	quiet := game("Quiet", "RPG", "PC", 5.0)
	popular := game("Popular", "RPG", "PC", 3.0)
	mustCreate(t, db, quiet)
	mustCreate(t, db, popular)

	for i := 0; i < 3; i++ {
		mustCreate(t, db, &models.Review{GameID: popular.ID, Rating: 4.0})
	}

	games, _, err := s.Games(ctx, SearchParams{SortBy: "popularity", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if games[0].Title != "Popular" {
		t.Fatalf("expected review count to drive popularity, got order %v", titles(games))
	}
}

func TestFeaturedGames(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("Bronze", "RPG", "PC", 3.0))
	mustCreate(t, db, game("Gold", "RPG", "PC", 5.0))
	mustCreate(t, db, game("Silver", "RPG", "PC", 4.0))
	retired := game("Retired", "RPG", "PC", 5.0)
	retired.IsActive = false
	mustCreate(t, db, retired)

	games, err := s.FeaturedGames(ctx, 2)
	if err != nil {
		t.Fatalf("FeaturedGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Title != "Gold" || games[1].Title != "Silver" {
		t.Fatalf("expected [Gold Silver], got %v", titles(games))
	}
}

func TestQuickSearch(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	byTitle := game("Portal", "Puzzle", "PC", 4.9)
	byDev := game("Other", "Puzzle", "PC", 4.0)
	byDev.Developer = "Portal Labs"
	byDescOnly := game("Third", "Puzzle", "PC", 4.5)
	byDescOnly.Description = "A portal to another world"
	for _, g := range []*models.Game{byTitle, byDev, byDescOnly} {
		mustCreate(t, db, g)
	}

	games, err := s.QuickSearch(ctx, "portal")
	if err != nil {
		t.Fatalf("QuickSearch: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 matches (descriptions excluded), got %d: %v", len(games), titles(games))
	}
	if games[0].Title != "Portal" {
		t.Fatalf("expected best-rated match first, got %v", titles(games))
	}
}

func TestQuickSearchBlankQuery(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("Anything", "RPG", "PC", 4.0))

	for _, q := range []string{"", "   ", "\t"} {
		games, err := s.QuickSearch(ctx, q)
		if err != nil {
			t.Fatalf("QuickSearch(%q): %v", q, err)
		}
		if len(games) != 0 {
			t.Fatalf("QuickSearch(%q): expected empty result, got %d", q, len(games))
		}
	}
}

func TestQuickSearchCap(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		mustCreate(t, db, game("Saga "+string(rune('A'+i)), "RPG", "PC", 4.0))
	}

	games, err := s.QuickSearch(ctx, "saga")
	if err != nil {
		t.Fatalf("QuickSearch: %v", err)
	}
	if len(games) != 10 {
		t.Fatalf("expected results capped at 10, got %d", len(games))
	}
}

func TestGameDetailsAggregates(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	g := game("Reviewed", "RPG", "PC", 4.0)
	mustCreate(t, db, g)
	for _, r := range []float64{5.0, 4.0, 3.0} {
		mustCreate(t, db, &models.Review{GameID: g.ID, Rating: r})
	}

	details, err := s.GameDetails(ctx, g.ID)
	if err != nil {
		t.Fatalf("GameDetails: %v", err)
	}
	if details.ReviewCount != 3 {
		t.Fatalf("expected reviewCount 3, got %d", details.ReviewCount)
	}
	if details.AverageRating != 4.0 {
		t.Fatalf("expected averageRating 4.0, got %v", details.AverageRating)
	}
	if len(details.Reviews) != 3 {
		t.Fatalf("expected 3 reviews attached, got %d", len(details.Reviews))
	}
}

func TestGameDetailsNoReviews(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	g := game("Lonely", "RPG", "PC", 4.0)
	mustCreate(t, db, g)

	details, err := s.GameDetails(ctx, g.ID)
	if err != nil {
		t.Fatalf("GameDetails: %v", err)
	}
	if details.AverageRating != 0 || details.ReviewCount != 0 {
		t.Fatalf("expected zero aggregates, got avg=%v count=%d", details.AverageRating, details.ReviewCount)
	}
}

func TestGameDetailsNotFound(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.GameDetails(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateReview(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	g := game("Target", "RPG", "PC", 4.0)
	mustCreate(t, db, g)

	review := &models.Review{GameID: g.ID, ReviewerName: "Sam", Rating: 4.5, Comment: "Great"}
	if err := s.CreateReview(ctx, review); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.ID == 0 {
		t.Fatal("expected review to receive an id")
	}
	if review.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp to be set")
	}
	if review.IsVerifiedPurchase {
		t.Fatal("expected verified-purchase to default to false")
	}
}

func TestCreateReviewUnknownGame(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	review := &models.Review{GameID: 999, Rating: 4.0}
	err := s.CreateReview(ctx, review)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no review persisted, found %d", count)
	}
}

func TestReviewsForGameNewestFirst(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	g := game("Timeline", "RPG", "PC", 4.0)
	mustCreate(t, db, g)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mustCreate(t, db, &models.Review{GameID: g.ID, Rating: 3.0, Comment: "oldest", CreatedAt: base})
	mustCreate(t, db, &models.Review{GameID: g.ID, Rating: 4.0, Comment: "middle", CreatedAt: base.Add(time.Hour)})
	mustCreate(t, db, &models.Review{GameID: g.ID, Rating: 5.0, Comment: "newest", CreatedAt: base.Add(2 * time.Hour)})

	reviews, err := s.ReviewsForGame(ctx, g.ID)
	if err != nil {
		t.Fatalf("ReviewsForGame: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}
	if reviews[0].Comment != "newest" || reviews[2].Comment != "oldest" {
		t.Fatalf("expected newest-first ordering, got [%s %s %s]",
			reviews[0].Comment, reviews[1].Comment, reviews[2].Comment)
	}
}

func TestStats(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("One", "RPG", "PC", 4.0))
	mustCreate(t, db, game("Two", "Action", "Switch", 4.0))
	gone := game("Gone", "Action", "PC", 4.0)
	gone.IsActive = false
	mustCreate(t, db, gone)
	mustCreate(t, db, &models.Genre{Name: "RPG"})
	mustCreate(t, db, &models.Genre{Name: "Action"})
	mustCreate(t, db, &models.Platform{Name: "PC"})

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalGames != 2 {
		t.Fatalf("expected 2 active games, got %d", stats.TotalGames)
	}
	if stats.TotalGenres != 2 || stats.TotalPlatforms != 1 {
		t.Fatalf("unexpected catalog counts: %+v", stats)
	}
}

func TestSyncCatalog(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	mustCreate(t, db, game("One", "RPG", "PC", 4.0))
	mustCreate(t, db, game("Two", "RPG", "Switch", 4.0))

	if err := s.SyncCatalog(ctx); err != nil {
		t.Fatalf("SyncCatalog: %v", err)
	}
	// Running twice must not duplicate labels.
	if err := s.SyncCatalog(ctx); err != nil {
		t.Fatalf("SyncCatalog (again): %v", err)
	}

	genres, err := s.Genres(ctx)
	if err != nil {
		t.Fatalf("Genres: %v", err)
	}
	if len(genres) != 1 || genres[0].Name != "RPG" {
		t.Fatalf("expected single RPG genre, got %+v", genres)
	}

	platforms, err := s.Platforms(ctx)
	if err != nil {
		t.Fatalf("Platforms: %v", err)
	}
	if len(platforms) != 2 {
		t.Fatalf("expected 2 platforms, got %d", len(platforms))
	}
	if platforms[0].Name != "PC" || platforms[1].Name != "Switch" {
		t.Fatalf("expected name-sorted platforms, got %+v", platforms)
	}
}

func TestDeleteGameSoftDelete(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	g := game("Doomed", "RPG", "PC", 4.0)
	mustCreate(t, db, g)
	mustCreate(t, db, &models.Review{GameID: g.ID, Rating: 5.0})

	if err := s.DeleteGame(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	// Hidden from listings...
	_, total, err := s.Games(ctx, SearchParams{})
	if err != nil {
		t.Fatalf("Games: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected soft-deleted game hidden from search, total %d", total)
	}

	// ...but the record and its reviews survive.
	details, err := s.GameDetails(ctx, g.ID)
	if err != nil {
		t.Fatalf("GameDetails after delete: %v", err)
	}
	if details.IsActive {
		t.Fatal("expected active flag cleared")
	}
	if details.ReviewCount != 1 {
		t.Fatalf("expected review retained, count %d", details.ReviewCount)
	}

	if err := s.DeleteGame(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestUpdateGame(t *testing.T) {
	s, db := newTestStorage(t)
	ctx := context.Background()

	g := game("Draft", "RPG", "PC", 3.0)
	mustCreate(t, db, g)
	before := g.UpdatedAt

	rating := 4.5
	updated, err := s.UpdateGame(ctx, g.ID, models.Game{
		Title:    "Final",
		Genre:    "Action",
		Platform: "PC",
		Rating:   &rating,
	})
	if err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}
	if updated.Title != "Final" || updated.Genre != "Action" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if updated.UpdatedAt.Before(before) {
		t.Fatal("expected updated timestamp to advance")
	}

	if _, err := s.UpdateGame(ctx, 999, models.Game{Title: "X", Genre: "Y", Platform: "Z"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
