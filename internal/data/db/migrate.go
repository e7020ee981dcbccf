package db

import (
	"fmt"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates or updates every records table, its unique indexes and
// foreign keys.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
