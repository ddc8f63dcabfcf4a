// Package app wires configuration, database, cache, and repositories behind
// the CLI commands: migrate, seed, normalize, verify, and status.
package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"valuationdb/cache"
	"valuationdb/config"
	"valuationdb/database"
	"valuationdb/database/drivers"
	models "valuationdb/database/models_pkg"
	"valuationdb/database/types"
	"valuationdb/database/watchlist"
	"valuationdb/helpers"
	"valuationdb/migrations"
	"valuationdb/seed"
)

// App represents the main application
type App struct {
	config *config.Config

	db         *database.Database
	redis      *cache.RedisClient
	watchCache *cache.WatchlistCache

	runner        *migrations.Runner
	driverRepo    *drivers.Repository
	watchlistRepo *watchlist.Repository
	seeder        *seed.Seeder
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	return &App{config: cfg}
}

// Setup connects to the database, optionally to Redis, and builds the
// repositories. It must be called before any Run method.
func (a *App) Setup() error {
	// 1. Database connection
	fmt.Println("🗄️  Connecting to database...")
	db, err := database.Connect(database.Config{
		Host:     a.config.DatabaseHost,
		Port:     a.config.DatabasePort,
		User:     a.config.DatabaseUser,
		Password: a.config.DatabasePassword,
		DBName:   a.config.DatabaseName,
		SSLMode:  a.config.DatabaseSSLMode,
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	a.db = db

	// 2. Redis connection, optional
	if a.config.Seeding.CacheEnabled {
		fmt.Println("🧠 Connecting to Redis...")
		redisClient := cache.NewRedisClient(
			a.config.RedisHost,
			a.config.RedisPort,
			a.config.RedisPassword,
		)
		if redisClient == nil {
			fmt.Println("⚠️  Redis connection failed. Scanner cache disabled.")
		} else {
			a.redis = redisClient
			ttl := time.Duration(a.config.Seeding.CacheTTLMinutes) * time.Minute
			a.watchCache = cache.NewWatchlistCache(redisClient, ttl)
		}
	}

	// 3. Repositories and migration runner
	a.runner = migrations.NewRunner(a.db.DB())
	a.driverRepo = drivers.NewRepositoryWithTolerance(a.db.DB(), a.config.Seeding.WeightTolerance)
	a.watchlistRepo = watchlist.NewRepository(a.db.DB())
	a.seeder = seed.NewSeeder(a.driverRepo, a.watchlistRepo, a.config.Seeding.Actor)

	return nil
}

// RunMigrate applies pending schema migrations
func (a *App) RunMigrate(ctx context.Context) error {
	applied, err := a.runner.Run()
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		log.Printf("✅ Applied %d migration(s)", len(applied))
	}
	return nil
}

// RunSeed seeds drivers and the watchlist, then refreshes the scanner cache
func (a *App) RunSeed(ctx context.Context) error {
	summary, err := a.seeder.Run()
	if err != nil {
		return err
	}

	log.Printf("✅ Seed complete: %d drivers inserted (%d already present), %d groups normalized, watchlist %d inserted / %d updated",
		summary.DriversInserted, summary.DriversSkipped, summary.GroupsNormalized,
		summary.WatchlistInserted, summary.WatchlistUpdated)
	if len(summary.UnknownTickers) > 0 {
		log.Printf("⚠️  %d ticker(s) missing from marketscrip: %s",
			len(summary.UnknownTickers), strings.Join(summary.UnknownTickers, ", "))
	}

	if a.watchCache != nil {
		if err := a.refreshCache(ctx); err != nil {
			// Drop both keys rather than leave the scanner a half-updated view
			log.Printf("⚠️  Cache refresh failed, invalidating: %v", err)
			if err := a.watchCache.Invalidate(ctx); err != nil {
				log.Printf("⚠️  Cache invalidation failed: %v", err)
			}
		}
		if err := a.watchCache.AnnounceWatchlist(ctx, summary); err != nil {
			log.Printf("⚠️  Watchlist event publish failed: %v", err)
		}
	}
	return nil
}

// RunNormalize renormalizes driver weights, either for one valuation group
// or for every (group, level) slice when group is empty
func (a *App) RunNormalize(ctx context.Context, group string) error {
	results, err := a.normalize(group)
	if err != nil {
		return err
	}

	for _, res := range results {
		log.Printf("📊 Normalized %s/%s: %d drivers, total %.3f -> %.3f",
			res.ValuationGroup, res.DriverLevel, res.RowCount, res.RawTotal, res.NormalizedTotal)
	}

	if a.watchCache != nil {
		if err := a.watchCache.AnnounceNormalization(ctx, results); err != nil {
			log.Printf("⚠️  Normalization event publish failed: %v", err)
		}
		if err := a.refreshWeightTotals(ctx); err != nil {
			log.Printf("⚠️  Weight totals cache refresh failed: %v", err)
		}
	}
	return nil
}

// RunVerify prints the weight verification report and fails when any group's
// total drifts out of tolerance, so scripted runs exit non-zero
func (a *App) RunVerify(ctx context.Context) error {
	reports, err := a.driverRepo.VerifyAll()
	if err != nil {
		return err
	}

	outOfTolerance := 0
	for _, rep := range reports {
		status := "✅"
		if !rep.InTolerance {
			status = "⚠️ "
			outOfTolerance++
		}
		log.Printf("%s %s/%s: %d drivers, total %s (drift %s)",
			status, rep.ValuationGroup, rep.DriverLevel, rep.DriverCount,
			helpers.FormatWeight(rep.WeightTotal), helpers.FormatDrift(rep.Drift))
		for _, line := range rep.Lines {
			log.Printf("    %-45s %-12s %s", line.DriverName, line.Category,
				helpers.FormatPercent(line.Weight))
		}
	}

	if a.watchCache != nil {
		if err := a.watchCache.RefreshWeightTotals(ctx, reports); err != nil {
			log.Printf("⚠️  Weight totals cache refresh failed: %v", err)
		}
	}

	if outOfTolerance > 0 {
		return fmt.Errorf("weight totals out of tolerance for %d group(s)", outOfTolerance)
	}
	log.Printf("✅ All %d group(s) within tolerance", len(reports))
	return nil
}

// RunStatus reports migration ledger state, watchlist size, and cache warmth
func (a *App) RunStatus(ctx context.Context) error {
	statuses, err := a.runner.Status()
	if err != nil {
		return err
	}
	pending := 0
	for _, s := range statuses {
		if s.Applied {
			log.Printf("✅ %s (applied %s)", s.Name, s.AppliedAt.Format(time.RFC3339))
		} else {
			log.Printf("⏳ %s (pending)", s.Name)
			pending++
		}
	}
	log.Printf("📊 Migrations: %d applied, %d pending", len(statuses)-pending, pending)

	enabled, err := a.watchlistRepo.CountEnabled()
	if err != nil {
		return err
	}
	log.Printf("📊 Watchlist: %d enabled entries", enabled)

	pairs, err := a.driverRepo.GroupLevels()
	if err != nil {
		return err
	}
	log.Printf("📊 Driver groups: %d (group, level) slices", len(pairs))

	if a.watchCache != nil {
		if a.watchCache.IsWarm(ctx) {
			cached, _ := a.watchCache.CachedEnabled(ctx)
			totals, _ := a.watchCache.CachedWeightTotals(ctx)
			log.Printf("✅ Scanner cache is warm: %d entries, %d weight reports", len(cached), len(totals))
		} else {
			log.Println("⏳ Scanner cache is cold")
		}
	}
	return nil
}

// RunAll runs the full pipeline: migrate, seed, verify
func (a *App) RunAll(ctx context.Context) error {
	fmt.Println("🔄 Step 1/3: migrations")
	if err := a.RunMigrate(ctx); err != nil {
		return err
	}
	fmt.Println("🔄 Step 2/3: seeding")
	if err := a.RunSeed(ctx); err != nil {
		return err
	}
	fmt.Println("🔄 Step 3/3: verification")
	return a.RunVerify(ctx)
}

// Close releases database and cache connections
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("⚠️  Database close failed: %v", err)
		}
	}
}

func (a *App) normalize(group string) ([]types.NormalizeResult, error) {
	group = strings.TrimSpace(group)
	if group == "" {
		return a.driverRepo.NormalizeAll()
	}

	parsed := models.ValuationGroup(strings.ToUpper(group))
	if !parsed.Valid() {
		return nil, database.NewValidationErrorWithValue("valuation_group", "unknown valuation group", group)
	}

	res, err := a.driverRepo.NormalizeGroup(parsed, models.DriverLevelGroup)
	if err != nil {
		return nil, err
	}
	return []types.NormalizeResult{*res}, nil
}

func (a *App) refreshCache(ctx context.Context) error {
	entries, err := a.watchlistRepo.EnabledEntries()
	if err != nil {
		return err
	}
	if err := a.watchCache.RefreshEnabled(ctx, entries); err != nil {
		return err
	}
	return a.refreshWeightTotals(ctx)
}

func (a *App) refreshWeightTotals(ctx context.Context) error {
	reports, err := a.driverRepo.VerifyAll()
	if err != nil {
		return err
	}
	return a.watchCache.RefreshWeightTotals(ctx, reports)
}
