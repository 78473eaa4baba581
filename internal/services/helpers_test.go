package services

import (
	"testing"
	"time"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Athlete{},
		&models.Race{},
		&models.Result{},
		&models.FantasyScore{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testPointsTable() map[int]int {
	return map[int]int{1: 100, 2: 80, 3: 65, 4: 55, 5: 45, 6: 40, 7: 36, 8: 32}
}

func createTestRace(t *testing.T, db *gorm.DB, name string) *models.Race {
	t.Helper()
	race := models.Race{Name: name, Date: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)}
	if err := db.Create(&race).Error; err != nil {
		t.Fatalf("failed to create test race: %v", err)
	}
	return &race
}

func createTestAthlete(t *testing.T, db *gorm.DB, name, country string) *models.Athlete {
	t.Helper()
	athlete := models.Athlete{Name: name, Country: country}
	if err := db.Create(&athlete).Error; err != nil {
		t.Fatalf("failed to create test athlete: %v", err)
	}
	return &athlete
}
