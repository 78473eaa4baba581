package services

import (
	"reflect"
	"testing"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/models"
)

func TestStandingsAggregation(t *testing.T) {
	db := setupTestDB(t)
	resultSvc := NewResultService(db, NewScoringService(testPointsTable()))
	standingsSvc := NewStandingsService(db)

	raceOne := createTestRace(t, db, "Opener")
	raceTwo := createTestRace(t, db, "Finals")
	jane := createTestAthlete(t, db, "Jane Doe", "USA")
	erika := createTestAthlete(t, db, "Erika Muster", "GER")
	rookie := createTestAthlete(t, db, "Rookie", "CAN")

	// Jane: 100 + 80 = 180, Erika: 80 + 100 = 180, Rookie: never raced.
	if err := resultSvc.IngestBatch(raceOne.ID, []ResultEntry{
		{AthleteID: jane.ID, Place: 1},
		{AthleteID: erika.ID, Place: 2},
	}); err != nil {
		t.Fatalf("IngestBatch race one failed: %v", err)
	}
	if err := resultSvc.IngestBatch(raceTwo.ID, []ResultEntry{
		{AthleteID: erika.ID, Place: 1},
		{AthleteID: jane.ID, Place: 2},
	}); err != nil {
		t.Fatalf("IngestBatch race two failed: %v", err)
	}

	entries, err := standingsSvc.Standings()
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d standings entries, want 3", len(entries))
	}

	// Equal totals tie-break on athlete id ascending; zero-score athletes
	// still appear.
	if entries[0].AthleteID != jane.ID || entries[0].TotalPoints != 180 {
		t.Errorf("entries[0] = %+v, want Jane with 180", entries[0])
	}
	if entries[1].AthleteID != erika.ID || entries[1].TotalPoints != 180 {
		t.Errorf("entries[1] = %+v, want Erika with 180", entries[1])
	}
	if entries[2].AthleteID != rookie.ID || entries[2].TotalPoints != 0 {
		t.Errorf("entries[2] = %+v, want Rookie with 0", entries[2])
	}
	if entries[2].Name != "Rookie" || entries[2].Country != "CAN" {
		t.Errorf("entries[2] identity = %q/%q, want Rookie/CAN", entries[2].Name, entries[2].Country)
	}
}

func TestStandingsMatchLedgerSums(t *testing.T) {
	db := setupTestDB(t)
	resultSvc := NewResultService(db, NewScoringService(testPointsTable()))
	standingsSvc := NewStandingsService(db)

	race := createTestRace(t, db, "Opener")
	athletes := []*models.Athlete{
		createTestAthlete(t, db, "A", "USA"),
		createTestAthlete(t, db, "B", "GER"),
		createTestAthlete(t, db, "C", "CAN"),
	}
	entries := make([]ResultEntry, len(athletes))
	for i, a := range athletes {
		entries[i] = ResultEntry{AthleteID: a.ID, Place: i + 1}
	}
	if err := resultSvc.IngestBatch(race.ID, entries); err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}

	standings, err := standingsSvc.Standings()
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}

	for _, entry := range standings {
		var sum int64
		err := db.Model(&models.FantasyScore{}).
			Where("athlete_id = ?", entry.AthleteID).
			Select("COALESCE(SUM(points), 0)").Scan(&sum).Error
		if err != nil {
			t.Fatalf("failed to sum ledger: %v", err)
		}
		if int(sum) != entry.TotalPoints {
			t.Errorf("athlete %d: standings total %d != ledger sum %d", entry.AthleteID, entry.TotalPoints, sum)
		}
	}
}

func TestStandingsIdempotentBetweenWrites(t *testing.T) {
	db := setupTestDB(t)
	resultSvc := NewResultService(db, NewScoringService(testPointsTable()))
	standingsSvc := NewStandingsService(db)

	race := createTestRace(t, db, "Opener")
	athlete := createTestAthlete(t, db, "Jane Doe", "USA")
	if err := resultSvc.IngestBatch(race.ID, []ResultEntry{{AthleteID: athlete.ID, Place: 3}}); err != nil {
		t.Fatalf("IngestBatch failed: %v", err)
	}

	first, err := standingsSvc.Standings()
	if err != nil {
		t.Fatalf("first Standings failed: %v", err)
	}
	second, err := standingsSvc.Standings()
	if err != nil {
		t.Fatalf("second Standings failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("standings changed between reads: %+v vs %+v", first, second)
	}
}

func TestStandingsEmptyBoard(t *testing.T) {
	db := setupTestDB(t)
	standingsSvc := NewStandingsService(db)

	entries, err := standingsSvc.Standings()
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if entries == nil {
		t.Fatal("Standings returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries on empty board, want 0", len(entries))
	}
}
