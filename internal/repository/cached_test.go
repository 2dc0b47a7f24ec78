package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// countingStandingsRepository counts pass-through snapshot loads.
type countingStandingsRepository struct {
	inner StandingsRepository
	calls int
}

func (r *countingStandingsRepository) Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error) {
	r.calls++
	return r.inner.Snapshot(ctx, season, week)
}

func seededStandings() *MemoryStandingsRepository {
	inner := NewMemoryStandingsRepository()
	inner.Put(&models.StandingsSnapshot{
		Season: 2024,
		Week:   5,
		Records: []models.StandingsRecord{
			{TeamID: "KC", Wins: 4, Losses: 1, PointsFor: 150, PointsAgainst: 100},
		},
	})
	return inner
}

func TestCachedSnapshotHit(t *testing.T) {
	counting := &countingStandingsRepository{inner: seededStandings()}
	cached := NewCachedStandingsRepository(counting, time.Minute)
	ctx := context.Background()

	first, err := cached.Snapshot(ctx, 2024, 5)
	require.NoError(t, err)
	second, err := cached.Snapshot(ctx, 2024, 5)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, counting.calls, "second read must come from cache")
}

func TestCachedSnapshotMissNotCached(t *testing.T) {
	counting := &countingStandingsRepository{inner: seededStandings()}
	cached := NewCachedStandingsRepository(counting, time.Minute)
	ctx := context.Background()

	_, err := cached.Snapshot(ctx, 2024, 9)
	require.ErrorIs(t, err, models.ErrSnapshotNotFound)
	_, err = cached.Snapshot(ctx, 2024, 9)
	require.ErrorIs(t, err, models.ErrSnapshotNotFound)

	assert.Equal(t, 2, counting.calls, "misses must not be cached")
}

func TestCachedLeagueAveragesMemoized(t *testing.T) {
	counting := &countingStandingsRepository{inner: seededStandings()}
	cached := NewCachedStandingsRepository(counting, time.Minute)
	ctx := context.Background()

	first, err := cached.LeagueAverages(ctx, 2024, 5)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, first.PointsForPerGame, 1e-9)

	second, err := cached.LeagueAverages(ctx, 2024, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls)
}

func TestCachedInvalidate(t *testing.T) {
	counting := &countingStandingsRepository{inner: seededStandings()}
	cached := NewCachedStandingsRepository(counting, time.Minute)
	ctx := context.Background()

	_, err := cached.Snapshot(ctx, 2024, 5)
	require.NoError(t, err)
	_, err = cached.LeagueAverages(ctx, 2024, 5)
	require.NoError(t, err)

	cached.Invalidate(2024, 5)

	_, err = cached.Snapshot(ctx, 2024, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, counting.calls, "invalidate must force a reload")
}
