package types

import "time"

// NormalizeResult reports what normalization did to one (group, level) slice
type NormalizeResult struct {
	ValuationGroup  string  `json:"valuation_group"`
	DriverLevel     string  `json:"driver_level"`
	RowCount        int64   `json:"row_count"`
	RawTotal        float64 `json:"raw_total"`
	NormalizedTotal float64 `json:"normalized_total"`
}

// DriverWeightLine is one driver's share of its group in a verification report
type DriverWeightLine struct {
	DriverName string  `json:"driver_name"`
	Category   string  `json:"category"`
	Weight     float64 `json:"weight"`
	WeightPct  float64 `json:"weight_pct"`
}

// GroupWeightReport summarizes one (group, level) slice for verification.
// Drift is the signed distance of WeightTotal from 1.0; InTolerance is false
// when the drift exceeds the allowed tolerance.
type GroupWeightReport struct {
	ValuationGroup string             `json:"valuation_group"`
	DriverLevel    string             `json:"driver_level"`
	DriverCount    int64              `json:"driver_count"`
	WeightTotal    float64            `json:"weight_total"`
	Drift          float64            `json:"drift"`
	InTolerance    bool               `json:"in_tolerance"`
	Lines          []DriverWeightLine `json:"lines,omitempty"`
}

// SeedSummary aggregates what a seeding run changed
type SeedSummary struct {
	DriversInserted   int64    `json:"drivers_inserted"`
	DriversSkipped    int64    `json:"drivers_skipped"`
	GroupsNormalized  int64    `json:"groups_normalized"`
	WatchlistInserted int64    `json:"watchlist_inserted"`
	WatchlistUpdated  int64    `json:"watchlist_updated"`
	UnknownTickers    []string `json:"unknown_tickers,omitempty"`
}

// MigrationStatus describes one migration's ledger state
type MigrationStatus struct {
	Name      string     `json:"name"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}
