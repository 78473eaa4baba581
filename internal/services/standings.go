package services

import "gorm.io/gorm"

// StandingsEntry is one leaderboard row. Derived on every read; never
// stored.
type StandingsEntry struct {
	AthleteID   uint   `json:"athleteId"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	TotalPoints int    `json:"totalPoints"`
}

type StandingsService struct {
	db *gorm.DB
}

func NewStandingsService(db *gorm.DB) *StandingsService {
	return &StandingsService{db: db}
}

// Standings sums the fantasy score ledger per athlete. The LEFT JOIN keeps
// athletes without any score on the board with a total of 0. Equal totals
// order by athlete id ascending so repeated reads are stable.
func (s *StandingsService) Standings() ([]StandingsEntry, error) {
	var entries []StandingsEntry
	err := s.db.Table("athletes").
		Select("athletes.id AS athlete_id, athletes.name, athletes.country, COALESCE(SUM(fantasy_scores.points), 0) AS total_points").
		Joins("LEFT JOIN fantasy_scores ON fantasy_scores.athlete_id = athletes.id").
		Group("athletes.id, athletes.name, athletes.country").
		Order("total_points DESC, athletes.id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []StandingsEntry{}
	}
	return entries, nil
}
