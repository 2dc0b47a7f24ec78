package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresStandingsRepository implements StandingsRepository for PostgreSQL
type PostgresStandingsRepository struct {
	db *database.DB
}

// NewPostgresStandingsRepository creates a new standings repository
func NewPostgresStandingsRepository(db *database.DB) StandingsRepository {
	return &PostgresStandingsRepository{db: db}
}

// Snapshot retrieves all standings rows for a season/week as one snapshot
func (r *PostgresStandingsRepository) Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error) {
	query := `
		SELECT team_id, team_name, wins, losses, ties, points_for, points_against,
		       home_wins, home_losses, road_wins, road_losses,
		       conference_wins, conference_losses, last_five_wins, last_five_losses
		FROM standings
		WHERE season = $1 AND week = $2
		ORDER BY team_id ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var records []models.StandingsRecord
	for rows.Next() {
		var rec models.StandingsRecord
		err := rows.Scan(
			&rec.TeamID, &rec.TeamName, &rec.Wins, &rec.Losses, &rec.Ties,
			&rec.PointsFor, &rec.PointsAgainst,
			&rec.HomeWins, &rec.HomeLosses, &rec.RoadWins, &rec.RoadLosses,
			&rec.ConferenceWins, &rec.ConferenceLosses,
			&rec.LastFiveWins, &rec.LastFiveLosses,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standings row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read standings rows: %w", err)
	}

	if len(records) == 0 {
		return nil, models.ErrSnapshotNotFound
	}

	return &models.StandingsSnapshot{Season: season, Week: week, Records: records}, nil
}
