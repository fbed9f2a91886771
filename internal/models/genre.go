package models

import "time"

// Genre is a catalog label (e.g. "RPG", "Shooter").
type Genre struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Genre) TableName() string {
	return "game_genres"
}
