package database

import (
	"fmt"
	"log"

	"github.com/junaidrashid-git/cornerstore-api/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table in dependency order.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("✅ Migration completed")
	return nil
}
