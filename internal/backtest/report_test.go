package backtest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func TestReportFinalize(t *testing.T) {
	report := newReport(Config{Season: 2024, StartWeek: 2, EndWeek: 3, Preset: "balanced"})

	week2 := []models.BacktestResult{
		resultWith("g1", true, true, 60, 2),
		resultWith("g2", false, false, 50, 8),
	}
	week3 := []models.BacktestResult{
		resultWith("g3", true, true, 70, 4),
	}
	report.addWeek(CalculateWeeklyMetrics(2024, 2, week2), week2, nil)
	report.addWeek(CalculateWeeklyMetrics(2024, 3, week3), week3, nil)
	report.finalize()

	if report.TotalGames != 3 {
		t.Fatalf("expected 3 games, got %d", report.TotalGames)
	}
	if report.TotalWinnerCorrect != 2 {
		t.Fatalf("expected 2 correct, got %d", report.TotalWinnerCorrect)
	}
	if report.OverallAvgConfidence != 60.0 {
		t.Fatalf("expected avg confidence 60, got %.2f", report.OverallAvgConfidence)
	}
	if report.GeneratedAt.IsZero() {
		t.Fatalf("expected generated timestamp")
	}
}

func TestReportFinalizeEmptyRun(t *testing.T) {
	report := newReport(Config{Season: 2024, StartWeek: 2, EndWeek: 2, Preset: "balanced"})
	report.addSkippedWeek(2, "missing snapshot")
	report.finalize()

	if report.TotalGames != 0 || report.OverallWinnerAccuracy != 0 {
		t.Fatalf("expected zeroed aggregates, got %+v", report)
	}
}

func TestWeekOverWeek(t *testing.T) {
	report := newReport(Config{Season: 2024, StartWeek: 2, EndWeek: 4, Preset: "balanced"})
	report.WeeklyStats = []WeeklyMetrics{
		{Week: 2, WinnerAccuracy: 50},
		{Week: 3, WinnerAccuracy: 60},
		{Week: 4, WinnerAccuracy: 55},
	}

	comparisons := report.WeekOverWeek()
	if len(comparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(comparisons))
	}
	if comparisons[0].WinnerAccuracyDelta != 10 {
		t.Fatalf("expected delta 10, got %.2f", comparisons[0].WinnerAccuracyDelta)
	}
	if comparisons[1].WinnerAccuracyDelta != -5 {
		t.Fatalf("expected delta -5, got %.2f", comparisons[1].WinnerAccuracyDelta)
	}
}

func TestExportToJSON(t *testing.T) {
	report := newReport(Config{Season: 2024, StartWeek: 2, EndWeek: 2, Preset: "balanced"})
	week := []models.BacktestResult{resultWith("g1", true, true, 60, 2)}
	report.addWeek(CalculateWeeklyMetrics(2024, 2, week), week, nil)
	report.finalize()

	path := filepath.Join(t.TempDir(), "nested", "report.json")
	if err := ExportToJSON(report, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported report: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode exported report: %v", err)
	}
	if decoded.TotalGames != 1 || decoded.Season != 2024 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestGenerateConsoleReport(t *testing.T) {
	report := newReport(Config{Season: 2024, StartWeek: 2, EndWeek: 2, Preset: "balanced"})
	week := []models.BacktestResult{resultWith("g1", true, true, 60, 2)}
	report.addWeek(CalculateWeeklyMetrics(2024, 2, week), week, nil)
	report.addSkippedWeek(3, "missing snapshot")
	report.finalize()

	out := GenerateConsoleReport(report)
	for _, want := range []string{"Season: 2024", "Winner Accuracy: 100.00%", "Skipped weeks: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("console report missing %q:\n%s", want, out)
		}
	}
}
