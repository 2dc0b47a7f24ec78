package repository

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// CachedStandingsRepository decorates a StandingsRepository with a TTL
// cache for snapshots and their derived league averages. Memoization only:
// correctness never depends on a hit. Both entries share a key, so no
// cached average can outlive the snapshot it was derived from.
type CachedStandingsRepository struct {
	inner StandingsRepository
	cache *cache.Cache
	ttl   time.Duration
}

// NewCachedStandingsRepository wraps a repository with a snapshot cache.
func NewCachedStandingsRepository(inner StandingsRepository, ttl time.Duration) *CachedStandingsRepository {
	return &CachedStandingsRepository{
		inner: inner,
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Snapshot returns the cached snapshot or loads it from the inner
// repository. Misses (including ErrSnapshotNotFound) are not cached.
func (r *CachedStandingsRepository) Snapshot(ctx context.Context, season, week int) (*models.StandingsSnapshot, error) {
	key := snapshotCacheKey(season, week)
	if cached, found := r.cache.Get(key); found {
		if snapshot, ok := cached.(*models.StandingsSnapshot); ok {
			return snapshot, nil
		}
	}

	snapshot, err := r.inner.Snapshot(ctx, season, week)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, snapshot, r.ttl)
	return snapshot, nil
}

// LeagueAverages returns the memoized league baselines for a snapshot,
// computing and caching them on first use.
func (r *CachedStandingsRepository) LeagueAverages(ctx context.Context, season, week int) (models.LeagueAverages, error) {
	key := averagesCacheKey(season, week)
	if cached, found := r.cache.Get(key); found {
		if avg, ok := cached.(models.LeagueAverages); ok {
			return avg, nil
		}
	}

	snapshot, err := r.Snapshot(ctx, season, week)
	if err != nil {
		return models.LeagueAverages{}, err
	}

	avg := models.ComputeLeagueAverages(snapshot)
	r.cache.Set(key, avg, r.ttl)
	return avg, nil
}

// Invalidate drops the snapshot and its derived averages for a season/week.
// Must be called whenever the underlying snapshot changes.
func (r *CachedStandingsRepository) Invalidate(season, week int) {
	r.cache.Delete(snapshotCacheKey(season, week))
	r.cache.Delete(averagesCacheKey(season, week))
}

func snapshotCacheKey(season, week int) string {
	return fmt.Sprintf("snapshot:%d:%d", season, week)
}

func averagesCacheKey(season, week int) string {
	return fmt.Sprintf("averages:%d:%d", season, week)
}
