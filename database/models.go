// Package database provides database access for the valuation system's
// migration and seeding tooling.
//
// This package includes:
//   - Connection management over PostgreSQL, one lib/pq pool shared by GORM
//   - The valuation data models (drivers, watchlist, social posts, event timeline)
//   - Typed errors and validation for database operations
//
// Key Concepts:
//   - Schema changes run as ordered, idempotent migrations, one transaction each
//   - Seed batches are inserted through GORM repositories in per-group transactions
//   - The external marketscrip securities table is read-only from here
//
// Data Models:
//
//	All data models (Driver, WatchlistEntry, etc.) are defined in the models_pkg
//	package to avoid circular import dependencies.
package database

import (
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	models "valuationdb/database/models_pkg"
)

// Database holds the GORM handle and the raw connection it runs on.
// Migrations and repositories both go through GORM; the raw handle owns the
// pool settings and the lifecycle.
type Database struct {
	db  *gorm.DB
	raw *DB
}

// DB returns the underlying GORM database instance for direct access when needed.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// SQL returns the underlying sql.DB pool.
func (d *Database) SQL() *sql.DB {
	return d.raw.GetConn()
}

// Connect establishes the database connection and layers GORM on top of it
func Connect(cfg Config) (*Database, error) {
	raw, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: raw.GetConn()}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		raw.Close()
		return nil, WrapDBError("connect", err)
	}

	return &Database{db: db, raw: raw}, nil
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	return d.raw.Ping()
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.raw.Close()
}

// ============================================================================
// Backward Compatibility Type Aliases
// ============================================================================

// These type aliases let callers work with the database package directly
// without importing models_pkg.

// Core data models
type Driver = models.Driver
type WatchlistEntry = models.WatchlistEntry
type SocialPost = models.SocialPost
type TimelineEvent = models.TimelineEvent
type Marketscrip = models.Marketscrip

// Enumerated field types
type ValuationGroup = models.ValuationGroup
type DriverLevel = models.DriverLevel
type DriverCategory = models.DriverCategory
type ImpactDirection = models.ImpactDirection
type Trend = models.Trend
type Priority = models.Priority
type Platform = models.Platform
