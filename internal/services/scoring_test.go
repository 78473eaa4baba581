package services

import "testing"

func TestScorePlaceTable(t *testing.T) {
	scoring := NewScoringService(testPointsTable())

	tests := []struct {
		name  string
		place int
		want  int
	}{
		{"first place", 1, 100},
		{"second place", 2, 80},
		{"third place", 3, 65},
		{"fourth place", 4, 55},
		{"fifth place", 5, 45},
		{"sixth place", 6, 40},
		{"seventh place", 7, 36},
		{"eighth place", 8, 32},
		{"ninth place scores nothing", 9, 0},
		{"zero place scores nothing", 0, 0},
		{"negative place scores nothing", -3, 0},
		{"absent place scores nothing", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Score(ResultContext{AthleteID: 1, RaceID: 1, Place: tt.place})
			if got != tt.want {
				t.Errorf("Score(place=%d) = %d, want %d", tt.place, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonicOverDefinedRange(t *testing.T) {
	scoring := NewScoringService(testPointsTable())

	prev := scoring.Score(ResultContext{Place: 1})
	for place := 2; place <= 8; place++ {
		cur := scoring.Score(ResultContext{Place: place})
		if cur > prev {
			t.Errorf("points for place %d (%d) exceed points for place %d (%d)", place, cur, place-1, prev)
		}
		prev = cur
	}
}

func TestScoreDeterministic(t *testing.T) {
	scoring := NewScoringService(testPointsTable())
	res := ResultContext{AthleteID: 7, RaceID: 3, Place: 2, Time: "1:12.45"}

	first := scoring.Score(res)
	for i := 0; i < 5; i++ {
		if got := scoring.Score(res); got != first {
			t.Fatalf("Score is not deterministic: got %d then %d", first, got)
		}
	}
}

func TestScoreBonusRules(t *testing.T) {
	homeBonus := func(res ResultContext) int {
		if res.AthleteID == 1 {
			return 10
		}
		return 0
	}
	scoring := NewScoringService(testPointsTable(), homeBonus)

	if got := scoring.Score(ResultContext{AthleteID: 1, Place: 1}); got != 110 {
		t.Errorf("Score with bonus = %d, want 110", got)
	}
	if got := scoring.Score(ResultContext{AthleteID: 2, Place: 1}); got != 100 {
		t.Errorf("Score without bonus = %d, want 100", got)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	penalty := func(ResultContext) int { return -500 }
	scoring := NewScoringService(testPointsTable(), penalty)

	if got := scoring.Score(ResultContext{Place: 1}); got != 0 {
		t.Errorf("Score clamped = %d, want 0", got)
	}
}
