package models

import "time"

// Review is a user-submitted rating for a game. A review belongs to exactly
// one game; deactivating a game does not delete its reviews.
type Review struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	GameID             uint      `gorm:"not null;index" json:"gameId"`
	ReviewerName       string    `json:"reviewerName"`
	Rating             float64   `gorm:"not null" json:"rating"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `gorm:"default:false" json:"isVerifiedPurchase"`
	CreatedAt          time.Time `json:"createdAt"`

	Game Game `gorm:"foreignKey:GameID" json:"-"`
}

func (Review) TableName() string {
	return "game_reviews"
}
