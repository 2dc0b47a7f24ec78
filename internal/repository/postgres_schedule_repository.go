package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresScheduleRepository implements ScheduleRepository for PostgreSQL
type PostgresScheduleRepository struct {
	db *database.DB
}

// NewPostgresScheduleRepository creates a new schedule repository
func NewPostgresScheduleRepository(db *database.DB) ScheduleRepository {
	return &PostgresScheduleRepository{db: db}
}

// Matchups retrieves all matchups for a season/week ordered by kickoff
func (r *PostgresScheduleRepository) Matchups(ctx context.Context, season, week int) ([]*models.Matchup, error) {
	query := `
		SELECT id, season, week, home_team_id, away_team_id, kickoff, status, home_score, away_score
		FROM matchups
		WHERE season = $1 AND week = $2
		ORDER BY kickoff ASC, id ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchups: %w", err)
	}
	defer rows.Close()

	var matchups []*models.Matchup
	for rows.Next() {
		m := &models.Matchup{}
		err := rows.Scan(
			&m.ID, &m.Season, &m.Week, &m.HomeTeamID, &m.AwayTeamID,
			&m.Kickoff, &m.Status, &m.HomeScore, &m.AwayScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan matchup: %w", err)
		}
		matchups = append(matchups, m)
	}

	return matchups, rows.Err()
}

// PostgresMarketLineRepository implements MarketLineRepository for PostgreSQL
type PostgresMarketLineRepository struct {
	db *database.DB
}

// NewPostgresMarketLineRepository creates a new market line repository
func NewPostgresMarketLineRepository(db *database.DB) MarketLineRepository {
	return &PostgresMarketLineRepository{db: db}
}

// Lines retrieves the market lines of a season/week keyed by matchup ID
func (r *PostgresMarketLineRepository) Lines(ctx context.Context, season, week int) (map[string]*models.MarketLine, error) {
	query := `
		SELECT l.matchup_id, l.spread, l.total
		FROM market_lines l
		JOIN matchups m ON m.id = l.matchup_id
		WHERE m.season = $1 AND m.week = $2
	`

	rows, err := r.db.GetPool().Query(ctx, query, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query market lines: %w", err)
	}
	defer rows.Close()

	lines := make(map[string]*models.MarketLine)
	for rows.Next() {
		line := &models.MarketLine{}
		if err := rows.Scan(&line.MatchupID, &line.Spread, &line.Total); err != nil {
			return nil, fmt.Errorf("failed to scan market line: %w", err)
		}
		lines[line.MatchupID] = line
	}

	return lines, rows.Err()
}
