// Package backtest replays the predictor against historical weeks under the
// temporal-integrity rule and aggregates accuracy and ROI statistics.
package backtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

type phase string

const (
	phaseLoadingStandings phase = "loading_standings"
	phasePredictingWeek   phase = "predicting_week"
	phaseScoringWeek      phase = "scoring_week"
	phaseDone             phase = "done"
)

// leagueAverager is implemented by repositories that memoize league
// averages per snapshot (the cached decorator). Plain repositories fall
// back to a direct fold.
type leagueAverager interface {
	LeagueAverages(ctx context.Context, season, week int) (models.LeagueAverages, error)
}

// Harness replays a week range. Week N predictions consume only the week
// N-1 standings snapshot; a week whose snapshot is missing is skipped with
// a logged reason, never aborting the run.
type Harness struct {
	config    Config
	standings repository.StandingsRepository
	schedule  repository.ScheduleRepository
	lines     repository.MarketLineRepository
	assembler *predictor.Assembler
	logger    *logrus.Logger
}

// NewHarness creates a backtest harness. The market line repository may be
// nil; edges and tiers then stay at their no-line defaults.
func NewHarness(cfg Config, standings repository.StandingsRepository, schedule repository.ScheduleRepository, lines repository.MarketLineRepository, assembler *predictor.Assembler, logger *logrus.Logger) (*Harness, error) {
	if standings == nil {
		return nil, fmt.Errorf("standings repository is required")
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule repository is required")
	}
	if assembler == nil {
		return nil, fmt.Errorf("assembler is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Harness{
		config:    cfg,
		standings: standings,
		schedule:  schedule,
		lines:     lines,
		assembler: assembler,
		logger:    logger,
	}, nil
}

// Config returns the harness configuration.
func (h *Harness) Config() Config {
	return h.config
}

// Run replays the configured week range and returns the aggregate report.
// Cancelling the context stops before the next week; already-computed
// weekly metrics remain valid in the partial report, returned alongside
// the context error.
func (h *Harness) Run(ctx context.Context) (*Report, error) {
	metrics.BacktestRunsTotal.Inc()
	report := newReport(h.config)

	for week := h.config.StartWeek; week <= h.config.EndWeek; week++ {
		if err := ctx.Err(); err != nil {
			h.logger.WithField("week", week).Warn("Backtest cancelled, returning partial report")
			report.finalize()
			return report, err
		}
		h.runWeek(ctx, week, report)
	}

	report.finalize()
	h.logPhase(phaseDone, h.config.EndWeek)
	metrics.LastRunWinnerAccuracy.Set(report.OverallWinnerAccuracy)
	metrics.LastRunAvgSpreadError.Set(report.OverallAvgSpreadError)
	return report, nil
}

func (h *Harness) runWeek(ctx context.Context, week int, report *Report) {
	h.logPhase(phaseLoadingStandings, week)

	// Temporal integrity: only the snapshot as of the end of week-1 may
	// feed week's predictions.
	snapshotWeek := week - 1
	snapshot, err := h.standings.Snapshot(ctx, h.config.Season, snapshotWeek)
	if err != nil {
		h.skipWeek(report, week, &models.MissingSnapshotError{Season: h.config.Season, Week: snapshotWeek, Err: err})
		return
	}

	avg, err := h.leagueAverages(ctx, snapshot)
	if err != nil {
		h.skipWeek(report, week, err)
		return
	}

	matchups, err := h.schedule.Matchups(ctx, h.config.Season, week)
	if err != nil {
		h.skipWeek(report, week, fmt.Errorf("failed to load schedule: %w", err))
		return
	}

	lines := h.loadLines(ctx, week)

	h.logPhase(phasePredictingWeek, week)
	final := make([]*models.Matchup, 0, len(matchups))
	for _, m := range matchups {
		if !m.IsFinal() {
			metrics.MatchupsSkippedTotal.WithLabelValues(metrics.SkipReasonNotFinal).Inc()
			continue
		}
		final = append(final, m)
	}

	results, failures := h.scoreMatchups(final, snapshot, avg, lines)

	h.logPhase(phaseScoringWeek, week)
	weekResults := make([]models.BacktestResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			weekResults = append(weekResults, *r)
		}
	}
	report.addWeek(CalculateWeeklyMetrics(h.config.Season, week, weekResults), weekResults, failures)

	h.logger.WithFields(logrus.Fields{
		"week":     week,
		"games":    len(weekResults),
		"failures": len(failures),
	}).Info("Week scored")
}

// scoreMatchups predicts and scores each final matchup, fanning out across
// workers when configured. Every worker reads only immutable snapshot data;
// results and failures keep schedule order via index slots.
func (h *Harness) scoreMatchups(matchups []*models.Matchup, snapshot *models.StandingsSnapshot, avg models.LeagueAverages, lines map[string]*models.MarketLine) ([]*models.BacktestResult, []FailedMatchup) {
	results := make([]*models.BacktestResult, len(matchups))
	failureSlots := make([]*FailedMatchup, len(matchups))

	var wg sync.WaitGroup
	sem := make(chan struct{}, h.config.Workers)
	for i := range matchups {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			m := matchups[i]
			pred, err := h.assembler.Predict(m, snapshot, avg, lines[m.ID], h.config.Preset)
			if err != nil {
				metrics.MatchupsSkippedTotal.WithLabelValues(metrics.SkipReasonMissingStandings).Inc()
				failureSlots[i] = &FailedMatchup{MatchupID: m.ID, Week: m.Week, Reason: err.Error()}
				return
			}
			metrics.PredictionsGeneratedTotal.Inc()

			result := models.NewBacktestResult(*pred, m)
			results[i] = &result
		}(i)
	}
	wg.Wait()

	failures := make([]FailedMatchup, 0)
	for _, f := range failureSlots {
		if f != nil {
			failures = append(failures, *f)
		}
	}
	return results, failures
}

func (h *Harness) leagueAverages(ctx context.Context, snapshot *models.StandingsSnapshot) (models.LeagueAverages, error) {
	if averager, ok := h.standings.(leagueAverager); ok {
		return averager.LeagueAverages(ctx, snapshot.Season, snapshot.Week)
	}
	return models.ComputeLeagueAverages(snapshot), nil
}

func (h *Harness) loadLines(ctx context.Context, week int) map[string]*models.MarketLine {
	if h.lines == nil {
		return nil
	}
	lines, err := h.lines.Lines(ctx, h.config.Season, week)
	if err != nil {
		h.logger.WithError(err).WithField("week", week).Warn("Failed to load market lines, proceeding without")
		return nil
	}
	return lines
}

func (h *Harness) skipWeek(report *Report, week int, reason error) {
	metrics.WeeksSkippedTotal.Inc()
	h.logger.WithFields(logrus.Fields{"week": week, "reason": reason.Error()}).Warn("Skipping week")
	report.addSkippedWeek(week, reason.Error())
}

func (h *Harness) logPhase(p phase, week int) {
	h.logger.WithFields(logrus.Fields{"phase": p, "week": week}).Debug("Harness phase")
}
