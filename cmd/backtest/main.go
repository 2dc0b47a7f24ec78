// Package main provides the entry point for the backtesting CLI tool.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/backtest"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/predictor"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		season     = flag.Int("season", 0, "Override season")
		startWeek  = flag.Int("start-week", 0, "Override first week to replay")
		endWeek    = flag.Int("end-week", 0, "Override last week to replay")
		preset     = flag.String("preset", "", "Override weight preset name")
		output     = flag.String("output", "", "Override output path for the JSON report")
		persist    = flag.Bool("persist", false, "Persist predictions to the database")
	)
	flag.Parse()

	ctx := context.Background()

	cfg := loadConfigWithSecrets(ctx, *configPath)
	log := logger.NewLogger(cfg.App.LogLevel)

	if cfg.Metrics.Enabled {
		metrics.StartServer(cfg.Metrics.Port, cfg.Metrics.Path, log)
	}

	btConfig := buildBacktestConfig(cfg, *season, *startWeek, *endWeek, *preset, *output, log)
	repos := buildRepositories(ctx, cfg, log)

	registry := predictor.NewRegistry()
	assembler := predictor.NewAssembler(registry, btConfig.StrictPreset, log)

	harness, err := backtest.NewHarness(btConfig, repos.standings, repos.schedule, repos.lines, assembler, log)
	if err != nil {
		log.Fatalf("Failed to create harness: %v", err)
	}

	log.WithFields(logrus.Fields{
		"season": btConfig.Season,
		"weeks":  btConfig.EndWeek - btConfig.StartWeek + 1,
		"preset": btConfig.Preset,
	}).Info("Starting backtest")

	report, err := harness.Run(ctx)
	if err != nil {
		log.Fatalf("Backtest failed: %v", err)
	}

	os.Stdout.WriteString(backtest.GenerateConsoleReport(report))

	if err := backtest.ExportToJSON(report, btConfig.OutputPath); err != nil {
		log.Fatalf("Failed to export report: %v", err)
	}
	log.WithField("path", btConfig.OutputPath).Info("Report exported")

	if *persist {
		persistPredictions(ctx, repos.predictions, report, log)
	}
}

type dataSources struct {
	standings   repository.StandingsRepository
	schedule    repository.ScheduleRepository
	lines       repository.MarketLineRepository
	predictions repository.PredictionRepository
}

func loadConfigWithSecrets(ctx context.Context, path string) *config.Config {
	bootstrap := logrus.New()

	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		bootstrap.Fatalf("Failed to load config: %v", err)
	}
	if secretName := os.Getenv("AWS_SECRET_NAME"); secretName != "" {
		if err := cfg.LoadSecretsFromAWS(ctx, secretName); err != nil {
			bootstrap.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		bootstrap.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func buildBacktestConfig(cfg *config.Config, season, startWeek, endWeek int, preset, output string, log *logrus.Logger) backtest.Config {
	if season > 0 {
		cfg.Backtest.Season = season
	}
	if startWeek > 0 {
		cfg.Backtest.StartWeek = startWeek
	}
	if endWeek > 0 {
		cfg.Backtest.EndWeek = endWeek
	}
	if preset != "" {
		cfg.Backtest.Preset = preset
	}
	if output != "" {
		cfg.Backtest.OutputPath = output
	}

	btConfig, err := backtest.FromConfig(&cfg.Backtest)
	if err != nil {
		log.Fatalf("Invalid backtest config: %v", err)
	}
	return btConfig
}

// buildRepositories wires either the postgres or the file-backed sources,
// wrapping standings in the snapshot cache either way.
func buildRepositories(ctx context.Context, cfg *config.Config, log *logrus.Logger) dataSources {
	cacheTTL := snapshotCacheTTL(cfg)

	if cfg.Database.Enabled {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		repos, err := repository.NewRepositories(db)
		if err != nil {
			log.Fatalf("Failed to initialize repositories: %v", err)
		}
		return dataSources{
			standings:   repository.NewCachedStandingsRepository(repos.Standings, cacheTTL),
			schedule:    repos.Schedule,
			lines:       repos.MarketLines,
			predictions: repos.Predictions,
		}
	}

	return dataSources{
		standings: repository.NewCachedStandingsRepository(
			repository.NewFileStandingsRepository(cfg.Data.StandingsDir), cacheTTL),
		schedule: repository.NewFileScheduleRepository(cfg.Data.ScheduleDir),
		lines:    repository.NewFileMarketLineRepository(cfg.Data.LinesDir),
	}
}

func persistPredictions(ctx context.Context, repo repository.PredictionRepository, report *backtest.Report, log *logrus.Logger) {
	if repo == nil {
		log.Warn("Persistence requested but database is disabled, skipping")
		return
	}

	predictions := make([]*models.Prediction, 0, len(report.AllResults))
	for i := range report.AllResults {
		predictions = append(predictions, &report.AllResults[i].Prediction)
	}
	if err := repo.InsertBatch(ctx, predictions); err != nil {
		log.Fatalf("Failed to persist predictions: %v", err)
	}
	log.WithField("count", len(predictions)).Info("Predictions persisted")
}

func snapshotCacheTTL(cfg *config.Config) time.Duration {
	seconds := cfg.Prediction.SnapshotCacheSeconds
	if seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}
