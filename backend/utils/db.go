package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/models"
)

// InitDB opens the Postgres connection and migrates the progression tables.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey
	// so the service layer can classify them.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.UnlockedTitle{},
		&models.CompletedQuest{},
		&models.TitleRequest{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
