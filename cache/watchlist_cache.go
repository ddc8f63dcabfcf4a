package cache

import (
	"context"
	"time"

	models "valuationdb/database/models_pkg"
	"valuationdb/database/types"
)

// Cache keys and pub/sub channels shared with the downstream news scanner.
// The scanner reads the keys on startup and subscribes to the channels for
// change notifications; this tool only writes and publishes.
const (
	KeyWatchlistEnabled   = "vs:watchlist:enabled"
	KeyDriverWeightTotals = "vs:drivers:weight-totals"

	ChannelWatchlistEvents = "vs:watchlist:events"
	ChannelDriverEvents    = "vs:drivers:events"
)

// WatchlistCache mirrors seeding results into Redis so the news scanner can
// pick up watchlist and weight changes without querying Postgres
type WatchlistCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewWatchlistCache creates a new watchlist cache instance
func NewWatchlistCache(redis *RedisClient, ttl time.Duration) *WatchlistCache {
	return &WatchlistCache{
		redis: redis,
		ttl:   ttl,
	}
}

// RefreshEnabled stores the current enabled watchlist
func (c *WatchlistCache) RefreshEnabled(ctx context.Context, entries []models.WatchlistEntry) error {
	return c.redis.Set(ctx, KeyWatchlistEnabled, entries, c.ttl)
}

// CachedEnabled retrieves the cached watchlist.
// Returns the entries and true if cached, nil and false otherwise.
func (c *WatchlistCache) CachedEnabled(ctx context.Context) ([]models.WatchlistEntry, bool) {
	var entries []models.WatchlistEntry
	if err := c.redis.Get(ctx, KeyWatchlistEnabled, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// RefreshWeightTotals stores the per-group weight reports
func (c *WatchlistCache) RefreshWeightTotals(ctx context.Context, reports []types.GroupWeightReport) error {
	return c.redis.Set(ctx, KeyDriverWeightTotals, reports, c.ttl)
}

// CachedWeightTotals retrieves the cached weight reports.
// Returns the reports and true if cached, nil and false otherwise.
func (c *WatchlistCache) CachedWeightTotals(ctx context.Context) ([]types.GroupWeightReport, bool) {
	var reports []types.GroupWeightReport
	if err := c.redis.Get(ctx, KeyDriverWeightTotals, &reports); err != nil {
		return nil, false
	}
	return reports, true
}

// IsWarm reports whether the scanner-facing keys are populated
func (c *WatchlistCache) IsWarm(ctx context.Context) bool {
	return c.redis.Exists(ctx, KeyWatchlistEnabled)
}

// Invalidate drops both scanner-facing keys
func (c *WatchlistCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Delete(ctx, KeyWatchlistEnabled); err != nil {
		return err
	}
	return c.redis.Delete(ctx, KeyDriverWeightTotals)
}

// AnnounceWatchlist publishes a seeding summary to the watchlist channel
func (c *WatchlistCache) AnnounceWatchlist(ctx context.Context, summary *types.SeedSummary) error {
	return c.redis.Publish(ctx, ChannelWatchlistEvents, summary)
}

// AnnounceNormalization publishes normalization results to the driver channel
func (c *WatchlistCache) AnnounceNormalization(ctx context.Context, results []types.NormalizeResult) error {
	return c.redis.Publish(ctx, ChannelDriverEvents, results)
}
