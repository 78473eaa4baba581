package services

import (
	"errors"
	"fmt"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"
	"github.com/curlyfettuccine-alt/sbx-fantasy/pkg/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResultEntry is one athlete's outcome inside a submitted batch.
type ResultEntry struct {
	AthleteID uint
	Place     int
	Time      string
}

type ResultService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewResultService(db *gorm.DB, scoring *ScoringService) *ResultService {
	return &ResultService{db: db, scoring: scoring}
}

// IngestBatch scores and persists one race's result batch. All writes run
// in a single transaction: any invalid entry or duplicate (race, athlete)
// pair aborts the whole batch with nothing applied.
func (s *ResultService) IngestBatch(raceID uint, entries []ResultEntry) error {
	if len(entries) == 0 {
		return ErrEmptyBatch
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var race models.Race
		if err := tx.First(&race, raceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRaceNotFound
			}
			return err
		}

		seen := make(map[uint]bool, len(entries))
		for _, entry := range entries {
			if entry.Place < 1 {
				return fmt.Errorf("%w (athlete %d)", ErrInvalidPlace, entry.AthleteID)
			}
			if seen[entry.AthleteID] {
				return fmt.Errorf("%w (athlete %d)", ErrDuplicateResult, entry.AthleteID)
			}
			seen[entry.AthleteID] = true

			var athlete models.Athlete
			if err := tx.First(&athlete, entry.AthleteID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w (athlete %d)", ErrAthleteNotFound, entry.AthleteID)
				}
				return err
			}

			var count int64
			if err := tx.Model(&models.Result{}).
				Where("race_id = ? AND athlete_id = ?", raceID, entry.AthleteID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w (athlete %d)", ErrDuplicateResult, entry.AthleteID)
			}

			points := s.scoring.Score(ResultContext{
				AthleteID: entry.AthleteID,
				RaceID:    raceID,
				Place:     entry.Place,
				Time:      entry.Time,
			})

			result := models.Result{
				RaceID:    raceID,
				AthleteID: entry.AthleteID,
				Place:     entry.Place,
				Time:      entry.Time,
				Points:    points,
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}

			score := models.FantasyScore{
				AthleteID: entry.AthleteID,
				RaceID:    raceID,
				Points:    points,
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"race_id": raceID,
		"entries": len(entries),
	}).Info("results batch ingested")
	return nil
}

// ListByRace returns the stored results of one race, best place first.
func (s *ResultService) ListByRace(raceID uint) ([]models.Result, error) {
	var results []models.Result
	if err := s.db.Where("race_id = ?", raceID).Order("place ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
