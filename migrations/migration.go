// Package migrations applies the valuation system's schema changes in order.
//
// Migrations are forward-only. Each one runs inside its own transaction and
// records itself in the vs_schema_migrations ledger; a migration already in
// the ledger is skipped. Every DDL statement is written to be re-runnable, so
// a database whose ledger was lost can still be migrated safely.
package migrations

import (
	"fmt"
	"log"
	"time"

	"valuationdb/database"
	"valuationdb/database/types"

	"gorm.io/gorm"
)

// LedgerTable is where applied migrations are recorded
const LedgerTable = "vs_schema_migrations"

// Migration is a single ordered schema change
type Migration interface {
	Name() string
	Up(tx *gorm.DB) error
}

// Runner applies registered migrations against one database
type Runner struct {
	db         *gorm.DB
	migrations []Migration
}

// NewRunner creates a runner over the default registry
func NewRunner(db *gorm.DB) *Runner {
	return &Runner{db: db, migrations: All()}
}

// NewRunnerWith creates a runner over an explicit migration list
func NewRunnerWith(db *gorm.DB, migrations []Migration) *Runner {
	return &Runner{db: db, migrations: migrations}
}

// Run applies every pending migration in registry order and returns the
// names it applied. The first failure stops the run; migrations applied
// before the failure stay applied.
func (r *Runner) Run() ([]string, error) {
	if err := r.ensureLedger(); err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range r.migrations {
		done, err := r.isApplied(m.Name())
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		log.Printf("🔄 Applying migration: %s", m.Name())
		err = r.db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", LedgerTable), m.Name(),
			).Error
		})
		if err != nil {
			return applied, database.WrapMigrationError(m.Name(), err)
		}

		log.Printf("✅ Migration applied: %s", m.Name())
		applied = append(applied, m.Name())
	}

	if len(applied) == 0 {
		log.Println("📊 Schema is up to date")
	}
	return applied, nil
}

// Status reports every registered migration's ledger state in apply order
func (r *Runner) Status() ([]types.MigrationStatus, error) {
	if err := r.ensureLedger(); err != nil {
		return nil, err
	}

	var rows []struct {
		Name      string
		AppliedAt time.Time
	}
	if err := r.db.Raw(
		fmt.Sprintf("SELECT name, applied_at FROM %s", LedgerTable),
	).Scan(&rows).Error; err != nil {
		return nil, database.WrapDBError("migration status", err)
	}

	appliedAt := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		appliedAt[row.Name] = row.AppliedAt
	}

	statuses := make([]types.MigrationStatus, 0, len(r.migrations))
	for _, m := range r.migrations {
		status := types.MigrationStatus{Name: m.Name()}
		if at, ok := appliedAt[m.Name()]; ok {
			status.Applied = true
			status.AppliedAt = &at
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Pending returns the names of migrations not yet in the ledger
func (r *Runner) Pending() ([]string, error) {
	statuses, err := r.Status()
	if err != nil {
		return nil, err
	}
	var pending []string
	for _, s := range statuses {
		if !s.Applied {
			pending = append(pending, s.Name)
		}
	}
	return pending, nil
}

func (r *Runner) ensureLedger() error {
	err := r.db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name VARCHAR(120) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`, LedgerTable)).Error
	if err != nil {
		return database.WrapDBError("create migration ledger", err)
	}
	return nil
}

func (r *Runner) isApplied(name string) (bool, error) {
	var count int64
	err := r.db.Raw(
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE name = ?", LedgerTable), name,
	).Scan(&count).Error
	if err != nil {
		return false, database.WrapDBError("check migration ledger", err)
	}
	return count > 0, nil
}
