package migrations

import (
	"errors"
	"path/filepath"
	"testing"

	"valuationdb/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testMigration lets runner tests use portable DDL; the shipped migrations
// target Postgres.
type testMigration struct {
	name string
	up   func(tx *gorm.DB) error
}

func (m *testMigration) Name() string         { return m.name }
func (m *testMigration) Up(tx *gorm.DB) error { return m.up(tx) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func createTableMigration(name, table string) *testMigration {
	return &testMigration{
		name: name,
		up: func(tx *gorm.DB) error {
			return tx.Exec("CREATE TABLE " + table + " (id INTEGER PRIMARY KEY)").Error
		},
	}
}

func TestRunAppliesInOrder(t *testing.T) {
	db := newTestDB(t)

	var order []string
	migs := make([]Migration, 0, 3)
	for _, name := range []string{"0001_first", "0002_second", "0003_third"} {
		name := name
		migs = append(migs, &testMigration{
			name: name,
			up: func(tx *gorm.DB) error {
				order = append(order, name)
				return tx.Exec("CREATE TABLE t_" + name + " (id INTEGER PRIMARY KEY)").Error
			},
		})
	}

	runner := NewRunnerWith(db, migs)
	applied, err := runner.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(applied) != 3 {
		t.Fatalf("expected 3 applied, got %d", len(applied))
	}
	for i, name := range []string{"0001_first", "0002_second", "0003_third"} {
		if applied[i] != name {
			t.Errorf("position %d: expected %s, got %s", i, name, applied[i])
		}
		if order[i] != name {
			t.Errorf("execution position %d: expected %s, got %s", i, name, order[i])
		}
	}

	// A second run must find everything in the ledger and execute nothing
	order = nil
	applied, err = runner.Run()
	if err != nil {
		t.Fatalf("Run rerun: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("expected no migrations on rerun, got %v", applied)
	}
	if len(order) != 0 {
		t.Errorf("expected no execution on rerun, got %v", order)
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	db := newTestDB(t)

	boom := errors.New("column collision")
	migs := []Migration{
		createTableMigration("0001_good", "mig_good"),
		&testMigration{
			name: "0002_bad",
			up: func(tx *gorm.DB) error {
				// DDL inside the transaction must roll back with the failure
				if err := tx.Exec("CREATE TABLE mig_bad (id INTEGER PRIMARY KEY)").Error; err != nil {
					return err
				}
				return boom
			},
		},
		createTableMigration("0003_never", "mig_never"),
	}

	runner := NewRunnerWith(db, migs)
	applied, err := runner.Run()
	if err == nil {
		t.Fatal("expected error from failing migration")
	}
	var mErr *database.MigrationError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MigrationError, got %T: %v", err, err)
	}
	if mErr.Name != "0002_bad" {
		t.Errorf("expected failure attributed to 0002_bad, got %s", mErr.Name)
	}
	if !errors.Is(err, boom) {
		t.Error("expected wrapped cause to survive unwrapping")
	}

	// Applied before the failure: only the first migration
	if len(applied) != 1 || applied[0] != "0001_good" {
		t.Errorf("expected [0001_good] applied, got %v", applied)
	}
	if !db.Migrator().HasTable("mig_good") {
		t.Error("expected mig_good table to exist")
	}
	if db.Migrator().HasTable("mig_bad") {
		t.Error("expected failed migration's DDL rolled back")
	}
	if db.Migrator().HasTable("mig_never") {
		t.Error("expected later migration never to run")
	}

	// Fixing the bad migration resumes from where the run stopped
	migs[1] = createTableMigration("0002_bad", "mig_bad")
	runner = NewRunnerWith(db, migs)
	applied, err = runner.Run()
	if err != nil {
		t.Fatalf("Run after fix: %v", err)
	}
	if len(applied) != 2 || applied[0] != "0002_bad" || applied[1] != "0003_never" {
		t.Errorf("expected [0002_bad 0003_never], got %v", applied)
	}
}

func TestStatusAndPending(t *testing.T) {
	db := newTestDB(t)

	first := createTableMigration("0001_first", "st_first")
	if _, err := NewRunnerWith(db, []Migration{first}).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	runner := NewRunnerWith(db, []Migration{
		first,
		createTableMigration("0002_second", "st_second"),
		createTableMigration("0003_third", "st_third"),
	})

	statuses, err := runner.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Applied || statuses[0].AppliedAt == nil {
		t.Error("expected 0001_first applied with a timestamp")
	}
	if statuses[1].Applied || statuses[2].Applied {
		t.Error("expected later migrations pending")
	}

	pending, err := runner.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 2 || pending[0] != "0002_second" || pending[1] != "0003_third" {
		t.Errorf("expected [0002_second 0003_third] pending, got %v", pending)
	}
}

func TestStatusOnFreshDatabase(t *testing.T) {
	db := newTestDB(t)

	runner := NewRunnerWith(db, []Migration{createTableMigration("0001_first", "fresh_first")})
	statuses, err := runner.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(statuses) != 1 || statuses[0].Applied {
		t.Errorf("expected one pending migration, got %+v", statuses)
	}
}

func TestRegistryOrder(t *testing.T) {
	want := []string{
		"0001_base_schema",
		"0002_social_platform_both",
		"0003_timeline_search_query",
		"0004_news_watchlist",
	}
	migs := All()
	if len(migs) != len(want) {
		t.Fatalf("expected %d registered migrations, got %d", len(want), len(migs))
	}
	for i, m := range migs {
		if m.Name() != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], m.Name())
		}
	}
}
