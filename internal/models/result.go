package models

import "time"

// Result is the raw recorded outcome of one athlete in one race.
// One row per (race, athlete); resubmissions are rejected, not accumulated.
type Result struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RaceID    uint      `gorm:"not null;uniqueIndex:idx_result_race_athlete" json:"race_id"`
	Race      Race      `gorm:"foreignKey:RaceID;constraint:OnDelete:CASCADE" json:"-"`
	AthleteID uint      `gorm:"not null;uniqueIndex:idx_result_race_athlete" json:"athlete_id"`
	Athlete   Athlete   `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
	Place     int       `gorm:"not null" json:"place"`
	Time      string    `gorm:"size:20" json:"time,omitempty"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"-"`
}
