package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// FileStandingsRepository reads standings snapshots from JSON files laid out
// as <dir>/standings_<season>_week_<week>.json, each holding an array of
// StandingsRecord objects.
type FileStandingsRepository struct {
	dir string
}

// NewFileStandingsRepository creates a file-backed standings repository.
func NewFileStandingsRepository(dir string) *FileStandingsRepository {
	return &FileStandingsRepository{dir: dir}
}

// Snapshot loads the snapshot file for a season/week, returning
// models.ErrSnapshotNotFound when the file does not exist.
func (r *FileStandingsRepository) Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("standings_%d_week_%d.json", season, week))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read standings file: %w", err)
	}

	var records []models.StandingsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse standings file %s: %w", path, err)
	}

	return &models.StandingsSnapshot{Season: season, Week: week, Records: records}, nil
}

// FileScheduleRepository reads matchups from JSON files laid out as
// <dir>/schedule_<season>_week_<week>.json.
type FileScheduleRepository struct {
	dir string
}

// NewFileScheduleRepository creates a file-backed schedule repository.
func NewFileScheduleRepository(dir string) *FileScheduleRepository {
	return &FileScheduleRepository{dir: dir}
}

// Matchups loads the schedule file for a season/week. A missing file means
// no games that week, not an error.
func (r *FileScheduleRepository) Matchups(ctx context.Context, season, week int) ([]*models.Matchup, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("schedule_%d_week_%d.json", season, week))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var matchups []*models.Matchup
	if err := json.Unmarshal(data, &matchups); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file %s: %w", path, err)
	}
	return matchups, nil
}

// FileMarketLineRepository reads market lines from JSON files laid out as
// <dir>/lines_<season>_week_<week>.json.
type FileMarketLineRepository struct {
	dir string
}

// NewFileMarketLineRepository creates a file-backed market line repository.
func NewFileMarketLineRepository(dir string) *FileMarketLineRepository {
	return &FileMarketLineRepository{dir: dir}
}

// Lines loads the line file for a season/week keyed by matchup ID. Lines
// are an optional benchmark; a missing file yields an empty map.
func (r *FileMarketLineRepository) Lines(ctx context.Context, season, week int) (map[string]*models.MarketLine, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("lines_%d_week_%d.json", season, week))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.MarketLine{}, nil
		}
		return nil, fmt.Errorf("failed to read lines file: %w", err)
	}

	var lines []models.MarketLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse lines file %s: %w", path, err)
	}

	byMatchup := make(map[string]*models.MarketLine, len(lines))
	for i := range lines {
		byMatchup[lines[i].MatchupID] = &lines[i]
	}
	return byMatchup, nil
}
