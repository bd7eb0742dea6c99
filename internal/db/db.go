package db

import (
	"inkwell/internal/config"
	"inkwell/internal/logger"
	"inkwell/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the Postgres connection, runs migrations and seeds the
// default author.
func Init(cfg config.AppConfig) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=inkwell port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.S.Fatalf("failed to connect to database: %v", err)
	}
	logger.L.Info("database connection established")

	if err := Migrate(DB); err != nil {
		logger.S.Fatalf("failed to migrate database: %v", err)
	}
	logger.L.Info("database migration completed")

	seedAuthor()
}

// Migrate creates or updates the schema. Split out so tests can run it
// against their own database handle.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
	)
}

// seedAuthor creates a default author so a fresh install has someone to
// hang posts off.
func seedAuthor() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	author := models.User{
		Username: "admin",
		Email:    "admin@localhost",
	}
	if err := author.SetPassword("change_me"); err != nil {
		logger.S.Errorf("failed to hash seed password: %v", err)
		return
	}
	if err := DB.Create(&author).Error; err != nil {
		logger.S.Errorf("failed to seed author: %v", err)
		return
	}
	logger.L.Info("default author created")
}
