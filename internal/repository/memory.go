package repository

import (
	"context"
	"sync"

	"github.com/yourusername/gridiron-edge/internal/models"
)

type snapshotKey struct {
	season int
	week   int
}

// MemoryStandingsRepository is an in-memory StandingsRepository, used for
// deterministic tests with fixed fixtures.
type MemoryStandingsRepository struct {
	mu        sync.RWMutex
	snapshots map[snapshotKey]*models.StandingsSnapshot
}

// NewMemoryStandingsRepository creates an empty in-memory standings store.
func NewMemoryStandingsRepository() *MemoryStandingsRepository {
	return &MemoryStandingsRepository{snapshots: make(map[snapshotKey]*models.StandingsSnapshot)}
}

// Put stores a snapshot under its (season, week) key.
func (r *MemoryStandingsRepository) Put(snapshot *models.StandingsSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshotKey{season: snapshot.Season, week: snapshot.Week}] = snapshot
}

// Snapshot returns the stored snapshot or models.ErrSnapshotNotFound.
func (r *MemoryStandingsRepository) Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot, ok := r.snapshots[snapshotKey{season: season, week: week}]
	if !ok {
		return nil, models.ErrSnapshotNotFound
	}
	return snapshot, nil
}

// MemoryScheduleRepository is an in-memory ScheduleRepository.
type MemoryScheduleRepository struct {
	mu       sync.RWMutex
	matchups map[snapshotKey][]*models.Matchup
}

// NewMemoryScheduleRepository creates an empty in-memory schedule store.
func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{matchups: make(map[snapshotKey][]*models.Matchup)}
}

// Put appends matchups for their season/week.
func (r *MemoryScheduleRepository) Put(matchups ...*models.Matchup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range matchups {
		key := snapshotKey{season: m.Season, week: m.Week}
		r.matchups[key] = append(r.matchups[key], m)
	}
}

// Matchups returns the stored matchups for a season/week, possibly empty.
func (r *MemoryScheduleRepository) Matchups(ctx context.Context, season, week int) ([]*models.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matchups[snapshotKey{season: season, week: week}], nil
}

// MemoryMarketLineRepository is an in-memory MarketLineRepository.
type MemoryMarketLineRepository struct {
	mu    sync.RWMutex
	lines map[snapshotKey]map[string]*models.MarketLine
}

// NewMemoryMarketLineRepository creates an empty in-memory line store.
func NewMemoryMarketLineRepository() *MemoryMarketLineRepository {
	return &MemoryMarketLineRepository{lines: make(map[snapshotKey]map[string]*models.MarketLine)}
}

// Put stores a line under its season/week.
func (r *MemoryMarketLineRepository) Put(season, week int, line *models.MarketLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := snapshotKey{season: season, week: week}
	if r.lines[key] == nil {
		r.lines[key] = make(map[string]*models.MarketLine)
	}
	r.lines[key][line.MatchupID] = line
}

// Lines returns the stored lines for a season/week keyed by matchup ID.
func (r *MemoryMarketLineRepository) Lines(ctx context.Context, season, week int) (map[string]*models.MarketLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make(map[string]*models.MarketLine, len(r.lines[snapshotKey{season: season, week: week}]))
	for id, line := range r.lines[snapshotKey{season: season, week: week}] {
		lines[id] = line
	}
	return lines, nil
}
