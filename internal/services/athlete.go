package services

import (
	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"

	"gorm.io/gorm"
)

type AthleteService struct {
	db *gorm.DB
}

func NewAthleteService(db *gorm.DB) *AthleteService {
	return &AthleteService{db: db}
}

func (s *AthleteService) Create(name, country string) (*models.Athlete, error) {
	athlete := models.Athlete{Name: name, Country: country}
	if err := s.db.Create(&athlete).Error; err != nil {
		return nil, err
	}
	return &athlete, nil
}

func (s *AthleteService) List() ([]models.Athlete, error) {
	var athletes []models.Athlete
	if err := s.db.Order("id ASC").Find(&athletes).Error; err != nil {
		return nil, err
	}
	return athletes, nil
}
