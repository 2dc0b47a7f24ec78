package backtest

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// recordingStandingsRepository records every requested snapshot week.
type recordingStandingsRepository struct {
	inner repository.StandingsRepository

	mu    sync.Mutex
	weeks []int
}

func (r *recordingStandingsRepository) Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error) {
	r.mu.Lock()
	r.weeks = append(r.weeks, week)
	r.mu.Unlock()
	return r.inner.Snapshot(ctx, season, week)
}

func intPtr(v int) *int {
	return &v
}

func testSnapshot(season, week int) *models.StandingsSnapshot {
	base := models.StandingsRecord{
		Wins:           3,
		Losses:         1,
		PointsFor:      100,
		PointsAgainst:  80,
		HomeWins:       2,
		RoadWins:       1,
		RoadLosses:     1,
		LastFiveWins:   3,
		LastFiveLosses: 1,
	}

	records := make([]models.StandingsRecord, 0, 4)
	for _, id := range []string{"KC", "BUF", "PHI", "DAL"} {
		rec := base
		rec.TeamID = id
		records = append(records, rec)
	}
	return &models.StandingsSnapshot{Season: season, Week: week, Records: records}
}

func finalMatchup(id string, season, week int, home, away string, homeScore, awayScore int) *models.Matchup {
	return &models.Matchup{
		ID:         id,
		Season:     season,
		Week:       week,
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     models.MatchupStatusFinal,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
	}
}

func testHarness(t *testing.T, cfg Config, standings repository.StandingsRepository, schedule repository.ScheduleRepository, lines repository.MarketLineRepository) *Harness {
	t.Helper()
	assembler := predictor.NewAssembler(predictor.NewRegistry(), false, quietLogger())
	h, err := NewHarness(cfg, standings, schedule, lines, assembler, quietLogger())
	if err != nil {
		t.Fatalf("failed to create harness: %v", err)
	}
	return h
}

func TestHarnessUsesPriorWeekSnapshotOnly(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	for week := 1; week <= 3; week++ {
		standings.Put(testSnapshot(2024, week))
	}
	recording := &recordingStandingsRepository{inner: standings}

	schedule := repository.NewMemoryScheduleRepository()
	for week := 2; week <= 4; week++ {
		schedule.Put(finalMatchup("g", 2024, week, "KC", "BUF", 27, 20))
	}

	cfg := Config{Season: 2024, StartWeek: 2, EndWeek: 4, Preset: "balanced", Workers: 1}
	h := testHarness(t, cfg, recording, schedule, nil)

	report, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.TotalGames != 3 {
		t.Fatalf("expected 3 games, got %d", report.TotalGames)
	}

	for i, requested := range recording.weeks {
		replayed := cfg.StartWeek + i
		if requested != replayed-1 {
			t.Fatalf("week %d requested snapshot week %d, want %d", replayed, requested, replayed-1)
		}
		if requested >= replayed {
			t.Fatalf("week %d leaked same-week standings (snapshot week %d)", replayed, requested)
		}
	}
}

func TestHarnessSkipsWeekWithoutSnapshot(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	standings.Put(testSnapshot(2024, 1))
	// Week 2's snapshot is absent, so week 3 cannot run.

	schedule := repository.NewMemoryScheduleRepository()
	schedule.Put(finalMatchup("g2", 2024, 2, "KC", "BUF", 24, 17))
	schedule.Put(finalMatchup("g3", 2024, 3, "PHI", "DAL", 21, 28))

	cfg := Config{Season: 2024, StartWeek: 2, EndWeek: 3, Preset: "balanced", Workers: 1}
	h := testHarness(t, cfg, standings, schedule, nil)

	report, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.TotalGames != 1 {
		t.Fatalf("expected 1 game, got %d", report.TotalGames)
	}
	if len(report.SkippedWeeks) != 1 || report.SkippedWeeks[0].Week != 3 {
		t.Fatalf("expected week 3 skipped, got %+v", report.SkippedWeeks)
	}
	if len(report.WeeklyStats) != 1 {
		t.Fatalf("skipped week must not produce weekly stats, got %d", len(report.WeeklyStats))
	}
}

func TestHarnessSkipsNonFinalMatchups(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	standings.Put(testSnapshot(2024, 1))

	schedule := repository.NewMemoryScheduleRepository()
	schedule.Put(finalMatchup("done", 2024, 2, "KC", "BUF", 30, 13))
	schedule.Put(&models.Matchup{
		ID: "pending", Season: 2024, Week: 2,
		HomeTeamID: "PHI", AwayTeamID: "DAL",
		Status: models.MatchupStatusScheduled,
	})

	cfg := Config{Season: 2024, StartWeek: 2, EndWeek: 2, Preset: "balanced", Workers: 1}
	h := testHarness(t, cfg, standings, schedule, nil)

	report, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.TotalGames != 1 {
		t.Fatalf("expected only the final matchup scored, got %d", report.TotalGames)
	}
	if report.AllResults[0].Prediction.MatchupID != "done" {
		t.Fatalf("unexpected matchup scored: %s", report.AllResults[0].Prediction.MatchupID)
	}
}

func TestHarnessCollectsPerMatchupFailures(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	standings.Put(testSnapshot(2024, 1))

	schedule := repository.NewMemoryScheduleRepository()
	schedule.Put(finalMatchup("good", 2024, 2, "KC", "BUF", 20, 17))
	schedule.Put(finalMatchup("bad", 2024, 2, "KC", "XYZ", 20, 17))

	cfg := Config{Season: 2024, StartWeek: 2, EndWeek: 2, Preset: "balanced", Workers: 2}
	h := testHarness(t, cfg, standings, schedule, nil)

	report, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.TotalGames != 1 {
		t.Fatalf("expected 1 scored game, got %d", report.TotalGames)
	}
	if len(report.Failures) != 1 || report.Failures[0].MatchupID != "bad" {
		t.Fatalf("expected matchup 'bad' to fail, got %+v", report.Failures)
	}
}

func TestHarnessAttachesMarketLines(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	standings.Put(testSnapshot(2024, 1))

	schedule := repository.NewMemoryScheduleRepository()
	schedule.Put(finalMatchup("g", 2024, 2, "KC", "BUF", 27, 24))

	lines := repository.NewMemoryMarketLineRepository()
	lines.Put(2024, 2, &models.MarketLine{MatchupID: "g", Spread: -3, Total: 47})

	cfg := Config{Season: 2024, StartWeek: 2, EndWeek: 2, Preset: "balanced", Workers: 1}
	h := testHarness(t, cfg, standings, schedule, lines)

	report, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.TotalGames != 1 {
		t.Fatalf("expected 1 game, got %d", report.TotalGames)
	}
	pred := report.AllResults[0].Prediction
	if pred.Edge == nil || pred.MarketLine == nil {
		t.Fatalf("expected edge and market line on the prediction")
	}
	if report.WeeklyStats[0].TotalSideGames != 1 {
		t.Fatalf("expected 1 total-side game, got %d", report.WeeklyStats[0].TotalSideGames)
	}
}

func TestHarnessCancelledContextReturnsPartialReport(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	standings.Put(testSnapshot(2024, 1))

	schedule := repository.NewMemoryScheduleRepository()
	schedule.Put(finalMatchup("g", 2024, 2, "KC", "BUF", 20, 10))

	cfg := Config{Season: 2024, StartWeek: 2, EndWeek: 6, Preset: "balanced", Workers: 1}
	h := testHarness(t, cfg, standings, schedule, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := h.Run(ctx)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if report == nil {
		t.Fatalf("expected partial report alongside the error")
	}
}

func TestNewHarnessValidation(t *testing.T) {
	standings := repository.NewMemoryStandingsRepository()
	schedule := repository.NewMemoryScheduleRepository()
	assembler := predictor.NewAssembler(predictor.NewRegistry(), false, quietLogger())

	if _, err := NewHarness(Config{Season: 2024, StartWeek: 2, EndWeek: 3, Preset: "balanced", Workers: 1}, nil, schedule, nil, assembler, quietLogger()); err == nil {
		t.Fatalf("expected error for missing standings repository")
	}
	if _, err := NewHarness(Config{Season: 2024, StartWeek: 5, EndWeek: 3, Preset: "balanced", Workers: 1}, standings, schedule, nil, assembler, quietLogger()); err == nil {
		t.Fatalf("expected error for inverted week range")
	}
}
