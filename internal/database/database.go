package database

import (
	"log"
	"strings"

	"github.com/eventily/eventily-api/internal/config"
	"github.com/eventily/eventily-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	// SQLite ships with foreign keys off and the pragma is per-connection,
	// so it has to ride on the DSN where every pooled connection picks it
	// up; the cascade DDL is inert without it.
	dsn := cfg.DatabaseURL
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey
	// so handlers can answer 409 instead of a generic 500.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DBPoolSize)
	sqlDB.SetMaxOpenConns(cfg.DBPoolSize + cfg.DBMaxOverflow)

	// Auto Migrate
	err = db.AutoMigrate(&models.Category{}, &models.Event{}, &models.Attendee{}, &models.Registration{})
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
