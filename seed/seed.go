// Package seed loads the valuation driver batches and the news watchlist
// into a migrated database. Seeding is idempotent: driver rows that already
// exist are skipped, watchlist rows that already exist are re-enabled and
// annotated, and normalization restores the per-group weight invariant
// afterwards.
package seed

import (
	"errors"
	"log"

	"valuationdb/database"
	"valuationdb/database/drivers"
	models "valuationdb/database/models_pkg"
	"valuationdb/database/types"
	"valuationdb/database/watchlist"
)

// Seeder runs the driver and watchlist seed waves
type Seeder struct {
	drivers   *drivers.Repository
	watchlist *watchlist.Repository
	actor     string
}

// NewSeeder creates a seeder over the two repositories it writes through.
// The actor is stamped into added_by and updated_by on every seeded row.
func NewSeeder(driverRepo *drivers.Repository, watchlistRepo *watchlist.Repository, actor string) *Seeder {
	if actor == "" {
		actor = database.DefaultAddedBy
	}
	return &Seeder{drivers: driverRepo, watchlist: watchlistRepo, actor: actor}
}

// Run seeds both driver waves, renormalizes every (group, level) slice, and
// then seeds the watchlist. The returned summary says what actually changed.
func (s *Seeder) Run() (*types.SeedSummary, error) {
	summary := &types.SeedSummary{}

	var err error
	summary.DriversInserted, summary.DriversSkipped, err = s.SeedDrivers()
	if err != nil {
		return summary, err
	}

	results, err := s.drivers.NormalizeAll()
	if err != nil {
		return summary, err
	}
	summary.GroupsNormalized = int64(len(results))
	for _, res := range results {
		log.Printf("📊 Normalized %s/%s: %d drivers, total %.3f -> %.3f",
			res.ValuationGroup, res.DriverLevel, res.RowCount, res.RawTotal, res.NormalizedTotal)
	}

	summary.WatchlistInserted, summary.WatchlistUpdated, summary.UnknownTickers, err = s.SeedWatchlist()
	if err != nil {
		return summary, err
	}
	return summary, nil
}

// SeedDrivers inserts the baseline wave and the sector refresh wave,
// one atomic batch per group
func (s *Seeder) SeedDrivers() (inserted, skipped int64, err error) {
	batches := append(BaselineDriverBatches(), SectorRefreshBatches()...)
	for _, batch := range batches {
		for i := range batch.Drivers {
			batch.Drivers[i].UpdatedBy = s.actor
		}
		batchInserted, batchSkipped, err := s.drivers.InsertBatch(batch.Drivers)
		if err != nil {
			return inserted, skipped, err
		}
		inserted += batchInserted
		skipped += batchSkipped
		log.Printf("🗄️ Seeded %s drivers: %d inserted, %d already present",
			batch.Group, batchInserted, batchSkipped)
	}
	return inserted, skipped, nil
}

// SeedWatchlist resolves each seed ticker against marketscrip and upserts
// the entry. Tickers missing from the reference table are collected and
// skipped rather than failing the run.
func (s *Seeder) SeedWatchlist() (inserted, updated int64, unknown []string, err error) {
	for _, sd := range WatchlistSeeds() {
		companyID, err := s.watchlist.ResolveCompanyID(sd.Symbol)
		if err != nil {
			var notFound *database.NotFoundError
			if errors.As(err, &notFound) {
				log.Printf("⚠️ Skipping watchlist seed for %s: not in marketscrip", sd.Symbol)
				unknown = append(unknown, sd.Symbol)
				continue
			}
			return inserted, updated, unknown, err
		}

		entry := &models.WatchlistEntry{
			CompanyID:   companyID,
			Priority:    sd.Priority,
			Notes:       sd.Note,
			ScanSources: sd.ScanSources,
			AddedBy:     s.actor,
		}
		created, err := s.watchlist.Upsert(entry)
		if err != nil {
			return inserted, updated, unknown, err
		}
		if created {
			inserted++
		} else {
			updated++
			log.Printf("🔄 Watchlist entry for %s re-enabled and annotated", sd.Symbol)
		}
	}
	return inserted, updated, unknown, nil
}
