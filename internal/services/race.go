package services

import (
	"time"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"

	"gorm.io/gorm"
)

type RaceService struct {
	db *gorm.DB
}

func NewRaceService(db *gorm.DB) *RaceService {
	return &RaceService{db: db}
}

func (s *RaceService) Create(name string, date time.Time) (*models.Race, error) {
	race := models.Race{Name: name, Date: date}
	if err := s.db.Create(&race).Error; err != nil {
		return nil, err
	}
	return &race, nil
}

// List returns all races, most recent first.
func (s *RaceService) List() ([]models.Race, error) {
	var races []models.Race
	if err := s.db.Order("date DESC").Find(&races).Error; err != nil {
		return nil, err
	}
	return races, nil
}
