package storage

import "gorm.io/gorm"

// Storage bundles all catalog queries over a single GORM connection. Every
// method is a stateless unit of work; concurrent use is safe as long as the
// underlying *gorm.DB is.
type Storage struct {
	db *gorm.DB
}

// New creates a Storage backed by db.
func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}
