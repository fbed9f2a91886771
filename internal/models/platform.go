package models

import "time"

// Platform is a hardware or storefront target (e.g. "PC", "PlayStation 5").
type Platform struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;unique;not null" json:"name"`
	Manufacturer string    `json:"manufacturer"`
	ReleaseYear  *int      `json:"releaseYear"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Platform) TableName() string {
	return "game_platforms"
}
