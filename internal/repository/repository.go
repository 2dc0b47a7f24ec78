package repository

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/database"
)

// Repositories bundles the postgres-backed data sources for injection into
// the harness and CLIs.
type Repositories struct {
	Standings   StandingsRepository
	Schedule    ScheduleRepository
	MarketLines MarketLineRepository
	Predictions PredictionRepository
}

// NewRepositories creates the repository container from a database handle
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	return &Repositories{
		Standings:   NewPostgresStandingsRepository(db),
		Schedule:    NewPostgresScheduleRepository(db),
		MarketLines: NewPostgresMarketLineRepository(db),
		Predictions: NewPostgresPredictionRepository(db),
	}, nil
}
