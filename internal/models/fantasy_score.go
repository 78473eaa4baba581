package models

import "time"

// FantasyScore is the ledger row standings are summed from. It mirrors
// Result.Points at ingestion time and is written in the same transaction,
// so scoring-rule changes can later diverge from raw results without
// touching them.
type FantasyScore struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AthleteID uint      `gorm:"not null;uniqueIndex:idx_score_race_athlete" json:"athlete_id"`
	Athlete   Athlete   `gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE" json:"-"`
	RaceID    uint      `gorm:"not null;uniqueIndex:idx_score_race_athlete" json:"race_id"`
	Race      Race      `gorm:"foreignKey:RaceID;constraint:OnDelete:CASCADE" json:"-"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"-"`
}
