// Package main provides the entry point for the single-week prediction CLI.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		season     = flag.Int("season", 0, "Season to predict (required)")
		week       = flag.Int("week", 0, "Week to predict (required)")
		preset     = flag.String("preset", "", "Weight preset name (defaults to config)")
		matchupID  = flag.String("matchup", "", "Predict a single matchup by ID")
		persist    = flag.Bool("persist", false, "Persist predictions to the database")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	log := logger.NewLogger(cfg.App.LogLevel)

	if *season <= 0 || *week < 1 {
		log.Fatal("Both -season and -week are required")
	}
	presetName := cfg.Prediction.Preset
	if *preset != "" {
		presetName = *preset
	}

	standings, schedule, lines, predictions := buildRepositories(ctx, cfg, log)
	assembler := predictor.NewAssembler(predictor.NewRegistry(), cfg.Prediction.StrictPreset, log)

	results := predictWeek(ctx, predictWeekParams{
		season:    *season,
		week:      *week,
		preset:    presetName,
		matchupID: *matchupID,
		standings: standings,
		schedule:  schedule,
		lines:     lines,
		assembler: assembler,
		logger:    log,
	})

	if *persist {
		if predictions == nil {
			log.Warn("Persistence requested but database is disabled, skipping")
		} else if err := predictions.InsertBatch(ctx, results); err != nil {
			log.Fatalf("Failed to persist predictions: %v", err)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		log.Fatalf("Failed to encode predictions: %v", err)
	}
}

type predictWeekParams struct {
	season    int
	week      int
	preset    string
	matchupID string
	standings repository.StandingsRepository
	schedule  repository.ScheduleRepository
	lines     repository.MarketLineRepository
	assembler *predictor.Assembler
	logger    *logrus.Logger
}

// predictWeek predicts every matchup of the week from the preceding week's
// standings snapshot. Per-matchup failures are logged and skipped.
func predictWeek(ctx context.Context, p predictWeekParams) []*models.Prediction {
	snapshot, err := p.standings.Snapshot(ctx, p.season, p.week-1)
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			p.logger.Fatalf("No standings snapshot for season %d week %d", p.season, p.week-1)
		}
		p.logger.Fatalf("Failed to load standings: %v", err)
	}
	avg := models.ComputeLeagueAverages(snapshot)

	matchups, err := p.schedule.Matchups(ctx, p.season, p.week)
	if err != nil {
		p.logger.Fatalf("Failed to load schedule: %v", err)
	}

	var lineByMatchup map[string]*models.MarketLine
	if p.lines != nil {
		lineByMatchup, err = p.lines.Lines(ctx, p.season, p.week)
		if err != nil {
			p.logger.WithError(err).Warn("Failed to load market lines, proceeding without")
		}
	}

	results := make([]*models.Prediction, 0, len(matchups))
	for _, m := range matchups {
		if p.matchupID != "" && m.ID != p.matchupID {
			continue
		}
		pred, err := p.assembler.Predict(m, snapshot, avg, lineByMatchup[m.ID], p.preset)
		if err != nil {
			p.logger.WithError(err).WithField("matchup", m.ID).Warn("Skipping matchup")
			continue
		}
		results = append(results, pred)
	}

	if p.matchupID != "" && len(results) == 0 {
		p.logger.Fatalf("Matchup %s not found in season %d week %d", p.matchupID, p.season, p.week)
	}
	return results
}

func buildRepositories(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repository.StandingsRepository, repository.ScheduleRepository, repository.MarketLineRepository, repository.PredictionRepository) {
	ttl := time.Duration(cfg.Prediction.SnapshotCacheSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	if cfg.Database.Enabled {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		repos, err := repository.NewRepositories(db)
		if err != nil {
			log.Fatalf("Failed to initialize repositories: %v", err)
		}
		return repository.NewCachedStandingsRepository(repos.Standings, ttl),
			repos.Schedule, repos.MarketLines, repos.Predictions
	}

	return repository.NewCachedStandingsRepository(repository.NewFileStandingsRepository(cfg.Data.StandingsDir), ttl),
		repository.NewFileScheduleRepository(cfg.Data.ScheduleDir),
		repository.NewFileMarketLineRepository(cfg.Data.LinesDir),
		nil
}
