package database

import (
	"fmt"
	"log"

	"camp-signup-backend/internal/config"
	"camp-signup-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	// Foreign keys are off by default in SQLite; the signup cascades
	// depend on them.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", cfg.DBPath)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Activity{},
		&models.Camper{},
		&models.Signup{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
