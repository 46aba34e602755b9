package db

import (
	"gorm.io/gorm"

	types "github.com/castellano-app/castellano-backend/internal/domain"
)

// AutoMigrateAll creates or updates the schema for every persisted model.
func (s *Service) AutoMigrateAll() error {
	return AutoMigrate(s.db)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Verb{},
		&types.Round{},
		&types.Guess{},
	)
}
