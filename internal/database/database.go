package database

import (
	"moneta-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open opens the catalog database. path may be a file or ":memory:"; the
// catalog is local reference data, there is no database server.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// AutoMigrate runs migrations for the catalog models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Instrument{})
}
