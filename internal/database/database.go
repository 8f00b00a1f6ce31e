package database

import (
	"log"
	"os"
	"time"

	"gamelist/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes the database connection and runs migrations.
// TranslateError makes unique-constraint violations surface as
// gorm.ErrDuplicatedKey, so handlers never parse driver error codes.
func Connect(dsn string) (*gorm.DB, error) {
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established.")

	if err := db.AutoMigrate(&models.User{}, &models.Game{}, &models.GameList{}); err != nil {
		return nil, err
	}

	log.Println("Database migrated successfully.")

	return db, nil
}
