package models

import "time"

// Game represents a catalog entry. Genre and Platform are stored as the
// label itself rather than a foreign key, mirroring the upstream catalog
// data; renaming a genre does not relabel existing games.
type Game struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Developer   string     `json:"developer"`
	Publisher   string     `json:"publisher"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Genre       string     `gorm:"not null;index" json:"genre"`
	Platform    string     `gorm:"not null;index" json:"platform"`
	Rating      *float64   `json:"rating"`
	Price       *float64   `json:"price"`
	ImageURL    string     `json:"imageUrl"`
	ESRBRating  string     `gorm:"size:10" json:"esrbRating"`
	Metascore   *int       `json:"metascore"`
	UserScore   *float64   `json:"userScore"`
	IsActive    bool       `gorm:"default:true;index" json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Game) TableName() string {
	return "games"
}
