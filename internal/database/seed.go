package database

import (
	"log"
	"time"

	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// SeedIfEmpty populates an empty database with the sample catalog. It is a
// no-op when any game already exists, so restarting the server never
// duplicates data.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Empty database detected, seeding sample catalog...")

	genres := sampleGenres()
	if err := db.Create(&genres).Error; err != nil {
		return err
	}
	platforms := samplePlatforms()
	if err := db.Create(&platforms).Error; err != nil {
		return err
	}
	games := sampleGames()
	if err := db.Create(&games).Error; err != nil {
		return err
	}

	// A couple of reviews so the detail pages have aggregates to show.
	reviews := []models.Review{
		{GameID: games[0].ID, ReviewerName: "Maya", Rating: 5.0, Comment: "Still the best open world I have played.", IsVerifiedPurchase: true},
		{GameID: games[0].ID, ReviewerName: "Jordan", Rating: 4.5, Comment: "Weapon durability aside, a masterpiece."},
		{GameID: games[2].ID, ReviewerName: "Sam", Rating: 5.0, Comment: "Boy."},
	}
	if err := db.Create(&reviews).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d games.", len(games))
	return nil
}

func sampleGenres() []models.Genre {
	return []models.Genre{
		{Name: "Action", Description: "Fast-paced games with combat and adventure"},
		{Name: "Adventure", Description: "Story-driven exploration games"},
		{Name: "RPG", Description: "Role-playing games with character development"},
		{Name: "Strategy", Description: "Games requiring tactical thinking"},
		{Name: "Simulation", Description: "Games that simulate real-world activities"},
		{Name: "Sports", Description: "Athletic and competitive sports games"},
		{Name: "Racing", Description: "High-speed vehicle racing games"},
		{Name: "Puzzle", Description: "Brain-teasing logic games"},
		{Name: "Fighting", Description: "Combat-focused competitive games"},
		{Name: "Shooter", Description: "First or third-person shooting games"},
	}
}

func samplePlatforms() []models.Platform {
	return []models.Platform{
		{Name: "PC", Manufacturer: "Various", ReleaseYear: intPtr(1980)},
		{Name: "PlayStation 5", Manufacturer: "Sony", ReleaseYear: intPtr(2020)},
		{Name: "Xbox Series X", Manufacturer: "Microsoft", ReleaseYear: intPtr(2020)},
		{Name: "Nintendo Switch", Manufacturer: "Nintendo", ReleaseYear: intPtr(2017)},
		{Name: "PlayStation 4", Manufacturer: "Sony", ReleaseYear: intPtr(2013)},
		{Name: "Xbox One", Manufacturer: "Microsoft", ReleaseYear: intPtr(2013)},
		{Name: "Steam Deck", Manufacturer: "Valve", ReleaseYear: intPtr(2022)},
	}
}

func sampleGames() []models.Game {
	return []models.Game{
		{
			Title:       "The Legend of Zelda: Breath of the Wild",
			Description: "An open-world adventure game that redefines the Zelda franchise with innovative gameplay mechanics.",
			Developer:   "Nintendo EPD",
			Publisher:   "Nintendo",
			ReleaseDate: datePtr(2017, 3, 3),
			Genre:       "Adventure",
			Platform:    "Nintendo Switch",
			Rating:      floatPtr(4.8),
			Price:       floatPtr(59.99),
			ESRBRating:  "E10+",
			Metascore:   intPtr(97),
			UserScore:   floatPtr(8.7),
			IsActive:    true,
		},
		{
			Title:       "Cyberpunk 2077",
			Description: "A futuristic RPG set in Night City where you play as a mercenary seeking immortality.",
			Developer:   "CD Projekt Red",
			Publisher:   "CD Projekt",
			ReleaseDate: datePtr(2020, 12, 10),
			Genre:       "RPG",
			Platform:    "PC",
			Rating:      floatPtr(4.2),
			Price:       floatPtr(49.99),
			ESRBRating:  "M",
			Metascore:   intPtr(86),
			UserScore:   floatPtr(7.1),
			IsActive:    true,
		},
		{
			Title:       "God of War",
			Description: "Kratos and his son Atreus embark on a journey through Norse mythology.",
			Developer:   "Santa Monica Studio",
			Publisher:   "Sony Interactive Entertainment",
			ReleaseDate: datePtr(2018, 4, 20),
			Genre:       "Action",
			Platform:    "PlayStation 5",
			Rating:      floatPtr(4.9),
			Price:       floatPtr(39.99),
			ESRBRating:  "M",
			Metascore:   intPtr(94),
			UserScore:   floatPtr(9.1),
			IsActive:    true,
		},
		{
			Title:       "Halo Infinite",
			Description: "Master Chief returns in this latest installment of the iconic sci-fi shooter series.",
			Developer:   "343 Industries",
			Publisher:   "Microsoft Studios",
			ReleaseDate: datePtr(2021, 12, 8),
			Genre:       "Shooter",
			Platform:    "Xbox Series X",
			Rating:      floatPtr(4.3),
			Price:       floatPtr(59.99),
			ESRBRating:  "T",
			Metascore:   intPtr(87),
			UserScore:   floatPtr(8.3),
			IsActive:    true,
		},
		{
			Title:       "Grand Theft Auto V",
			Description: "An open-world crime game following three protagonists in Los Santos.",
			Developer:   "Rockstar North",
			Publisher:   "Rockstar Games",
			ReleaseDate: datePtr(2013, 9, 17),
			Genre:       "Action",
			Platform:    "PC",
			Rating:      floatPtr(4.6),
			Price:       floatPtr(29.99),
			ESRBRating:  "M",
			Metascore:   intPtr(96),
			UserScore:   floatPtr(8.2),
			IsActive:    true,
		},
		{
			Title:       "Mario Kart 8 Deluxe",
			Description: "The ultimate racing experience with Mario and friends on Nintendo Switch.",
			Developer:   "Nintendo EPD",
			Publisher:   "Nintendo",
			ReleaseDate: datePtr(2017, 4, 28),
			Genre:       "Racing",
			Platform:    "Nintendo Switch",
			Rating:      floatPtr(4.7),
			Price:       floatPtr(59.99),
			ESRBRating:  "E",
			Metascore:   intPtr(92),
			UserScore:   floatPtr(8.9),
			IsActive:    true,
		},
		{
			Title:       "Elden Ring",
			Description: "A dark fantasy action RPG created by FromSoftware and George R.R. Martin.",
			Developer:   "FromSoftware",
			Publisher:   "Bandai Namco",
			ReleaseDate: datePtr(2022, 2, 25),
			Genre:       "RPG",
			Platform:    "PC",
			Rating:      floatPtr(4.8),
			Price:       floatPtr(59.99),
			ESRBRating:  "M",
			Metascore:   intPtr(96),
			UserScore:   floatPtr(8.8),
			IsActive:    true,
		},
		{
			Title:       "FIFA 24",
			Description: "The latest entry in the long-running football simulation series.",
			Developer:   "EA Sports",
			Publisher:   "Electronic Arts",
			ReleaseDate: datePtr(2023, 9, 29),
			Genre:       "Sports",
			Platform:    "PlayStation 5",
			Rating:      floatPtr(4.0),
			Price:       floatPtr(69.99),
			ESRBRating:  "E",
			Metascore:   intPtr(79),
			UserScore:   floatPtr(7.4),
			IsActive:    true,
		},
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
