package models

import (
	"testing"
)

func TestStandingsRecordRates(t *testing.T) {
	rec := StandingsRecord{Wins: 3, Losses: 1, Ties: 1, PointsFor: 110, PointsAgainst: 90}

	if rec.GamesPlayed() != 5 {
		t.Fatalf("expected 5 games, got %d", rec.GamesPlayed())
	}
	if rec.WinRate() != 0.6 {
		t.Fatalf("expected win rate 0.6, got %.2f", rec.WinRate())
	}
	if rec.PointsForPerGame() != 22 || rec.PointsAgainstPerGame() != 18 {
		t.Fatalf("unexpected per-game points: %.2f / %.2f", rec.PointsForPerGame(), rec.PointsAgainstPerGame())
	}
}

func TestStandingsRecordZeroGames(t *testing.T) {
	rec := StandingsRecord{TeamID: "HOU"}

	if rec.WinRate() != 0 || rec.PointsForPerGame() != 0 || rec.PointsAgainstPerGame() != 0 {
		t.Fatalf("expected neutral rates for zero games")
	}
}

func TestSnapshotFind(t *testing.T) {
	snapshot := StandingsSnapshot{
		Season:  2024,
		Week:    5,
		Records: []StandingsRecord{{TeamID: "KC"}, {TeamID: "BUF"}},
	}

	rec, ok := snapshot.Find("BUF")
	if !ok || rec.TeamID != "BUF" {
		t.Fatalf("expected to find BUF")
	}
	if _, ok := snapshot.Find("XYZ"); ok {
		t.Fatalf("expected lookup miss for unknown team")
	}
}

func TestComputeLeagueAverages(t *testing.T) {
	snapshot := &StandingsSnapshot{
		Season: 2024,
		Week:   4,
		Records: []StandingsRecord{
			{TeamID: "KC", Wins: 4, PointsFor: 120, PointsAgainst: 80},
			{TeamID: "BUF", Wins: 2, Losses: 2, PointsFor: 80, PointsAgainst: 120},
		},
	}

	avg := ComputeLeagueAverages(snapshot)
	if avg.PointsForPerGame != 25 {
		t.Fatalf("expected 25 points for per game, got %.2f", avg.PointsForPerGame)
	}
	if avg.PointsAgainstPerGame != 25 {
		t.Fatalf("expected 25 points against per game, got %.2f", avg.PointsAgainstPerGame)
	}
	if avg.NetPointsPerGame != 0 {
		t.Fatalf("expected net 0, got %.2f", avg.NetPointsPerGame)
	}
}

func TestComputeLeagueAveragesEmptySnapshot(t *testing.T) {
	avg := ComputeLeagueAverages(&StandingsSnapshot{Season: 2024, Week: 0})
	if avg != (LeagueAverages{}) {
		t.Fatalf("expected zeroed averages for empty snapshot, got %+v", avg)
	}
}
