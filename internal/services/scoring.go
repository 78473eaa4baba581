package services

// ResultContext carries everything known about one race outcome. Only
// Place feeds the shipped rules; the rest is here so bonus rules (time
// gaps, country bonuses) can be added without changing any signature.
type ResultContext struct {
	AthleteID uint
	RaceID    uint
	Place     int
	Time      string
}

// BonusRule awards extra points on top of the place table.
type BonusRule func(ResultContext) int

type ScoringService struct {
	pointsForPlace map[int]int
	bonuses        []BonusRule
}

func NewScoringService(pointsForPlace map[int]int, bonuses ...BonusRule) *ScoringService {
	return &ScoringService{pointsForPlace: pointsForPlace, bonuses: bonuses}
}

// Score returns the fantasy points for one result. Places outside the
// table (including zero and negative) score 0 rather than failing: a bad
// entry must never abort a batch.
func (s *ScoringService) Score(res ResultContext) int {
	points := s.pointsForPlace[res.Place]
	for _, bonus := range s.bonuses {
		points += bonus(res)
	}
	if points < 0 {
		points = 0
	}
	return points
}
