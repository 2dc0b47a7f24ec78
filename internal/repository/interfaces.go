// Package repository defines the injected data-access boundary of the
// predictor core. The core consumes these interfaces only; file, memory,
// and postgres implementations are interchangeable adapters.
package repository

import (
	"context"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// StandingsRepository supplies immutable standings snapshots keyed by
// (season, week). Implementations return models.ErrSnapshotNotFound when a
// snapshot is absent.
type StandingsRepository interface {
	Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error)
}

// ScheduleRepository supplies the matchups of a season/week, including
// final scores once complete.
type ScheduleRepository interface {
	Matchups(ctx context.Context, season, week int) ([]*models.Matchup, error)
}

// MarketLineRepository supplies external market lines per week, keyed by
// matchup ID. Lines are optional; an empty map is a valid answer.
type MarketLineRepository interface {
	Lines(ctx context.Context, season, week int) (map[string]*models.MarketLine, error)
}

// PredictionRepository persists produced predictions.
type PredictionRepository interface {
	Insert(ctx context.Context, prediction *models.Prediction) error
	InsertBatch(ctx context.Context, predictions []*models.Prediction) error
	GetByMatchupID(ctx context.Context, matchupID string) ([]*models.Prediction, error)
}
