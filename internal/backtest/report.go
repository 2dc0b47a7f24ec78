package backtest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
)

// SkippedWeek records a week the harness refused to run, with the reason.
type SkippedWeek struct {
	Week   int    `json:"week"`
	Reason string `json:"reason"`
}

// FailedMatchup records a per-matchup prediction failure that did not abort
// the batch.
type FailedMatchup struct {
	MatchupID string `json:"matchupId"`
	Week      int    `json:"week"`
	Reason    string `json:"reason"`
}

// Report is the artifact of one backtest run, consumed by downstream
// reporting layers.
type Report struct {
	RunID        uuid.UUID `json:"runId"`
	Season       int       `json:"season"`
	StartWeek    int       `json:"startWeek"`
	EndWeek      int       `json:"endWeek"`
	Preset       string    `json:"preset"`
	ModelVersion string    `json:"modelVersion"`
	GeneratedAt  time.Time `json:"generatedAt"`

	TotalGames            int     `json:"totalGames"`
	TotalWinnerCorrect    int     `json:"totalWinnerCorrect"`
	OverallWinnerAccuracy float64 `json:"overallWinnerAccuracy"`
	OverallAvgSpreadError float64 `json:"overallAvgSpreadError"`
	OverallAvgTotalError  float64 `json:"overallAvgTotalError"`
	OverallAvgConfidence  float64 `json:"overallAvgConfidence"`

	WeeklyStats  []WeeklyMetrics         `json:"weeklyStats"`
	AllResults   []models.BacktestResult `json:"allResults"`
	SkippedWeeks []SkippedWeek           `json:"skippedWeeks"`
	Failures     []FailedMatchup         `json:"failures"`
}

func newReport(cfg Config) *Report {
	return &Report{
		RunID:        uuid.New(),
		Season:       cfg.Season,
		StartWeek:    cfg.StartWeek,
		EndWeek:      cfg.EndWeek,
		Preset:       cfg.Preset,
		ModelVersion: predictor.ModelVersion,
		WeeklyStats:  []WeeklyMetrics{},
		AllResults:   []models.BacktestResult{},
		SkippedWeeks: []SkippedWeek{},
		Failures:     []FailedMatchup{},
	}
}

func (r *Report) addWeek(weekly WeeklyMetrics, results []models.BacktestResult, failures []FailedMatchup) {
	r.WeeklyStats = append(r.WeeklyStats, weekly)
	r.AllResults = append(r.AllResults, results...)
	r.Failures = append(r.Failures, failures...)
}

func (r *Report) addSkippedWeek(week int, reason string) {
	r.SkippedWeeks = append(r.SkippedWeeks, SkippedWeek{Week: week, Reason: reason})
}

// finalize recomputes the season-level aggregates from the collected
// results.
func (r *Report) finalize() {
	r.GeneratedAt = time.Now().UTC()
	r.TotalGames = len(r.AllResults)
	if r.TotalGames == 0 {
		return
	}

	spreadErrSum := 0.0
	totalErrSum := 0.0
	confidenceSum := 0
	correct := 0
	for i := range r.AllResults {
		res := &r.AllResults[i]
		if res.WinnerCorrect {
			correct++
		}
		spreadErrSum += res.SpreadError
		totalErrSum += res.TotalError
		confidenceSum += res.Prediction.Confidence
	}

	games := float64(r.TotalGames)
	r.TotalWinnerCorrect = correct
	r.OverallWinnerAccuracy = float64(correct) / games * 100
	r.OverallAvgSpreadError = spreadErrSum / games
	r.OverallAvgTotalError = totalErrSum / games
	r.OverallAvgConfidence = float64(confidenceSum) / games
}

// WeekOverWeek returns comparisons between each consecutive pair of weekly
// stats in the report.
func (r *Report) WeekOverWeek() []WeeklyComparison {
	if len(r.WeeklyStats) < 2 {
		return nil
	}
	comparisons := make([]WeeklyComparison, 0, len(r.WeeklyStats)-1)
	for i := 1; i < len(r.WeeklyStats); i++ {
		comparisons = append(comparisons, CompareWeeks(r.WeeklyStats[i-1], r.WeeklyStats[i]))
	}
	return comparisons
}

// GenerateConsoleReport formats the report for terminal output
func GenerateConsoleReport(r *Report) string {
	var builder strings.Builder
	builder.WriteString("Backtest Report\n")
	builder.WriteString("================\n")
	builder.WriteString(fmt.Sprintf("Season: %d, weeks %d-%d, preset %s (%s)\n", r.Season, r.StartWeek, r.EndWeek, r.Preset, r.ModelVersion))
	builder.WriteString(fmt.Sprintf("Games: %d\n", r.TotalGames))
	builder.WriteString(fmt.Sprintf("Winner Accuracy: %.2f%%\n", r.OverallWinnerAccuracy))
	builder.WriteString(fmt.Sprintf("Avg Spread Error: %.2f\n", r.OverallAvgSpreadError))
	builder.WriteString(fmt.Sprintf("Avg Total Error: %.2f\n", r.OverallAvgTotalError))
	builder.WriteString(fmt.Sprintf("Avg Confidence: %.1f\n", r.OverallAvgConfidence))
	for _, w := range r.WeeklyStats {
		builder.WriteString(w.String())
		builder.WriteString("\n")
	}
	if len(r.SkippedWeeks) > 0 {
		builder.WriteString(fmt.Sprintf("Skipped weeks: %d\n", len(r.SkippedWeeks)))
	}
	if len(r.Failures) > 0 {
		builder.WriteString(fmt.Sprintf("Failed matchups: %d\n", len(r.Failures)))
	}
	return builder.String()
}

// ExportToJSON writes the report to disk as JSON
func ExportToJSON(r *Report, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return os.WriteFile(outputPath, data, 0o644)
}
