package database

import (
	"time"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/config"
	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"
	"github.com/curlyfettuccine-alt/sbx-fantasy/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get underlying sql.DB: ", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	logger.Info("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Athlete{},
		&models.Race{},
		&models.Result{},
		&models.FantasyScore{},
	)
	if err != nil {
		logger.Fatal("failed to auto-migrate: ", err)
	}
	logger.Info("database migrated")
}
