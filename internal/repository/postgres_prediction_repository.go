package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresPredictionRepository implements PredictionRepository for PostgreSQL
type PostgresPredictionRepository struct {
	db *database.DB
}

// NewPostgresPredictionRepository creates a new prediction repository
func NewPostgresPredictionRepository(db *database.DB) PredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// Insert inserts a single prediction
func (r *PostgresPredictionRepository) Insert(ctx context.Context, p *models.Prediction) error {
	query := `
		INSERT INTO predictions (id, matchup_id, season, week, home_team_id, away_team_id,
			home_rating, away_rating, spread, total, home_score, away_score,
			confidence, tier, preset, model_version, predicted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		p.ID, p.MatchupID, p.Season, p.Week, p.HomeTeamID, p.AwayTeamID,
		p.HomeRating, p.AwayRating, p.Spread, p.Total, p.Score.Home, p.Score.Away,
		p.Confidence, p.Tier, p.Preset, p.ModelVersion, p.PredictedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	return nil
}

// InsertBatch inserts multiple predictions using COPY
func (r *PostgresPredictionRepository) InsertBatch(ctx context.Context, predictions []*models.Prediction) error {
	if len(predictions) == 0 {
		return nil
	}

	columns := []string{
		"id", "matchup_id", "season", "week", "home_team_id", "away_team_id",
		"home_rating", "away_rating", "spread", "total", "home_score", "away_score",
		"confidence", "tier", "preset", "model_version", "predicted_at",
	}

	copyRows := make([][]interface{}, len(predictions))
	for i, p := range predictions {
		copyRows[i] = []interface{}{
			p.ID, p.MatchupID, p.Season, p.Week, p.HomeTeamID, p.AwayTeamID,
			p.HomeRating, p.AwayRating, p.Spread, p.Total, p.Score.Home, p.Score.Away,
			p.Confidence, string(p.Tier), p.Preset, p.ModelVersion, p.PredictedAt,
		}
	}

	count, err := r.db.GetPool().CopyFrom(ctx, pgx.Identifier{"predictions"}, columns, pgx.CopyFromRows(copyRows))
	if err != nil {
		return fmt.Errorf("failed to batch insert predictions: %w", err)
	}
	if count != int64(len(predictions)) {
		return fmt.Errorf("inserted %d rows, expected %d", count, len(predictions))
	}

	return nil
}

// GetByMatchupID retrieves all predictions produced for a matchup, newest
// first. Superseded predictions remain; callers take the head for the
// freshest run.
func (r *PostgresPredictionRepository) GetByMatchupID(ctx context.Context, matchupID string) ([]*models.Prediction, error) {
	query := `
		SELECT id, matchup_id, season, week, home_team_id, away_team_id,
			home_rating, away_rating, spread, total, home_score, away_score,
			confidence, tier, preset, model_version, predicted_at
		FROM predictions
		WHERE matchup_id = $1
		ORDER BY predicted_at DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, matchupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*models.Prediction
	for rows.Next() {
		p := &models.Prediction{}
		err := rows.Scan(
			&p.ID, &p.MatchupID, &p.Season, &p.Week, &p.HomeTeamID, &p.AwayTeamID,
			&p.HomeRating, &p.AwayRating, &p.Spread, &p.Total, &p.Score.Home, &p.Score.Away,
			&p.Confidence, &p.Tier, &p.Preset, &p.ModelVersion, &p.PredictedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}
