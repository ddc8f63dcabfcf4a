package drivers

import (
	"errors"
	"path/filepath"
	"testing"

	"valuationdb/database"
	models "valuationdb/database/models_pkg"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Driver{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testDriver(group models.ValuationGroup, name string, weight float64) models.Driver {
	return models.Driver{
		ValuationGroup:  group,
		DriverLevel:     models.DriverLevelGroup,
		DriverName:      name,
		Category:        models.CategoryDemand,
		ImpactDirection: models.ImpactPositive,
		Weight:          weight,
	}
}

func TestInsertBatch(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	batch := []models.Driver{
		testDriver(models.GroupAuto, "Passenger vehicle demand cycle", 0.4),
		testDriver(models.GroupAuto, "Raw material cost basket", 0.35),
		testDriver(models.GroupAuto, "Export market traction", 0.25),
	}

	inserted, skipped, err := repo.InsertBatch(batch)
	if err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}
	if inserted != 3 || skipped != 0 {
		t.Errorf("expected 3 inserted, 0 skipped, got %d/%d", inserted, skipped)
	}

	// Re-running the same batch must skip every row, not duplicate them
	inserted, skipped, err = repo.InsertBatch(batch)
	if err != nil {
		t.Fatalf("InsertBatch rerun: %v", err)
	}
	if inserted != 0 || skipped != 3 {
		t.Errorf("expected 0 inserted, 3 skipped on rerun, got %d/%d", inserted, skipped)
	}

	// A mixed batch only inserts the new row
	batch = append(batch, testDriver(models.GroupAuto, "Discounting intensity", 0.1))
	inserted, skipped, err = repo.InsertBatch(batch)
	if err != nil {
		t.Fatalf("InsertBatch mixed: %v", err)
	}
	if inserted != 1 || skipped != 3 {
		t.Errorf("expected 1 inserted, 3 skipped on mixed batch, got %d/%d", inserted, skipped)
	}

	rows, err := repo.ListByGroup(models.GroupAuto, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("ListByGroup: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(rows))
	}
}

func TestInsertBatchValidation(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	tests := []struct {
		name   string
		driver models.Driver
	}{
		{
			name:   "empty name",
			driver: testDriver(models.GroupAuto, "  ", 0.5),
		},
		{
			name: "unknown group",
			driver: models.Driver{
				ValuationGroup:  "CRYPTO",
				DriverName:      "Token velocity",
				Category:        models.CategoryDemand,
				ImpactDirection: models.ImpactPositive,
				Weight:          0.5,
			},
		},
		{
			name: "unknown category",
			driver: models.Driver{
				ValuationGroup:  models.GroupAuto,
				DriverName:      "Mystery force",
				Category:        "ASTROLOGY",
				ImpactDirection: models.ImpactPositive,
				Weight:          0.5,
			},
		},
		{
			name: "unknown impact direction",
			driver: models.Driver{
				ValuationGroup:  models.GroupAuto,
				DriverName:      "Sideways pressure",
				Category:        models.CategoryDemand,
				ImpactDirection: "SIDEWAYS",
				Weight:          0.5,
			},
		},
		{
			name:   "zero weight",
			driver: testDriver(models.GroupAuto, "Weightless driver", 0),
		},
		{
			name:   "negative weight",
			driver: testDriver(models.GroupAuto, "Negative driver", -0.3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := repo.InsertBatch([]models.Driver{tt.driver})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var vErr *database.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}

	// A batch with one bad row writes nothing
	batch := []models.Driver{
		testDriver(models.GroupAuto, "Good driver", 0.5),
		testDriver(models.GroupAuto, "Bad driver", -1),
	}
	if _, _, err := repo.InsertBatch(batch); err == nil {
		t.Fatal("expected error for batch with invalid row")
	}
	var count int64
	if err := repo.db.Model(&models.Driver{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table after rejected batch, got %d rows", count)
	}
}

func TestInsertBatchDefaults(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	batch := []models.Driver{
		{
			ValuationGroup:  models.GroupEnergy,
			DriverName:      "Crude price trajectory",
			Category:        models.CategoryMacroSignal,
			ImpactDirection: models.ImpactNegative,
			Weight:          0.6,
		},
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	rows, err := repo.ListByGroup(models.GroupEnergy, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("ListByGroup: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	d := rows[0]
	if d.DriverLevel != models.DriverLevelGroup {
		t.Errorf("expected default level GROUP, got %s", d.DriverLevel)
	}
	if d.Trend != models.TrendStable {
		t.Errorf("expected default trend STABLE, got %s", d.Trend)
	}
	if d.UpdatedBy != database.DefaultAddedBy {
		t.Errorf("expected default updated_by %q, got %q", database.DefaultAddedBy, d.UpdatedBy)
	}
}

func TestNormalizeGroup(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	batch := []models.Driver{
		testDriver(models.GroupAuto, "Demand cycle", 2.0),
		testDriver(models.GroupAuto, "Cost basket", 1.0),
		testDriver(models.GroupAuto, "Rate trajectory", 1.0),
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	res, err := repo.NormalizeGroup(models.GroupAuto, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("NormalizeGroup: %v", err)
	}
	if res.RowCount != 3 {
		t.Errorf("expected 3 rows, got %d", res.RowCount)
	}
	if !within(res.RawTotal, 4.0, 1e-9) {
		t.Errorf("expected raw total 4.0, got %f", res.RawTotal)
	}
	if !within(res.NormalizedTotal, 1.0, 1e-9) {
		t.Errorf("expected normalized total 1.0, got %f", res.NormalizedTotal)
	}

	rows, err := repo.ListByGroup(models.GroupAuto, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("ListByGroup: %v", err)
	}
	if !within(rows[0].Weight, 0.5, 1e-9) {
		t.Errorf("expected top weight 0.5, got %f", rows[0].Weight)
	}
	for _, d := range rows {
		if d.UpdatedBy != database.NormalizerActor {
			t.Errorf("expected updated_by %q after normalization, got %q", database.NormalizerActor, d.UpdatedBy)
		}
	}
}

func TestNormalizeGroupRounding(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	// Three equal weights cannot split evenly into 3 decimals; the stored
	// total lands at 0.999, inside the verification tolerance.
	batch := []models.Driver{
		testDriver(models.GroupTechnology, "IT budget cycle", 1.0),
		testDriver(models.GroupTechnology, "Attrition cost", 1.0),
		testDriver(models.GroupTechnology, "Deal pipeline", 1.0),
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	res, err := repo.NormalizeGroup(models.GroupTechnology, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("NormalizeGroup: %v", err)
	}
	if !within(res.NormalizedTotal, 0.999, 1e-9) {
		t.Errorf("expected normalized total 0.999, got %f", res.NormalizedTotal)
	}

	report, err := repo.VerifyGroupWeights(models.GroupTechnology, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("VerifyGroupWeights: %v", err)
	}
	if !report.InTolerance {
		t.Errorf("expected rounding drift %f to be inside tolerance", report.Drift)
	}
}

func TestNormalizeGroupEmpty(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.NormalizeGroup(models.GroupUtilities, models.DriverLevelGroup)
	if err == nil {
		t.Fatal("expected error for empty group")
	}
	var nfErr *database.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Errorf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestNormalizeGroupZeroTotal(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	// Zero weights cannot arrive through InsertBatch, so write them directly
	rows := []models.Driver{
		testDriver(models.GroupMaterials, "Flat driver one", 0),
		testDriver(models.GroupMaterials, "Flat driver two", 0),
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	_, err := repo.NormalizeGroup(models.GroupMaterials, models.DriverLevelGroup)
	if err == nil {
		t.Fatal("expected error for zero weight total")
	}
	var vErr *database.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %T: %v", err, err)
	}

	// The failed normalization must not have touched the rows
	kept, listErr := repo.ListByGroup(models.GroupMaterials, models.DriverLevelGroup)
	if listErr != nil {
		t.Fatalf("ListByGroup: %v", listErr)
	}
	for _, d := range kept {
		if d.Weight != 0 {
			t.Errorf("expected weight untouched at 0, got %f", d.Weight)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	batch := []models.Driver{
		testDriver(models.GroupAuto, "Demand cycle", 0.6),
		testDriver(models.GroupAuto, "Cost basket", 0.2),
		testDriver(models.GroupFinancials, "Credit growth", 3.0),
		testDriver(models.GroupFinancials, "Deposit repricing", 1.0),
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	results, err := repo.NormalizeAll()
	if err != nil {
		t.Fatalf("NormalizeAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// GroupLevels orders alphabetically, AUTO before FINANCIALS
	if results[0].ValuationGroup != string(models.GroupAuto) {
		t.Errorf("expected AUTO first, got %s", results[0].ValuationGroup)
	}
	for _, res := range results {
		if !within(res.NormalizedTotal, 1.0, 0.002) {
			t.Errorf("group %s: expected total near 1.0, got %f", res.ValuationGroup, res.NormalizedTotal)
		}
	}
}

func TestVerifyGroupWeights(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	batch := []models.Driver{
		testDriver(models.GroupHealthcare, "US generics pricing", 0.5),
		testDriver(models.GroupHealthcare, "Domestic formulations growth", 0.3),
		testDriver(models.GroupHealthcare, "USFDA inspection outcomes", 0.2),
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	report, err := repo.VerifyGroupWeights(models.GroupHealthcare, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("VerifyGroupWeights: %v", err)
	}
	if report.DriverCount != 3 {
		t.Errorf("expected 3 drivers, got %d", report.DriverCount)
	}
	if !within(report.WeightTotal, 1.0, 1e-9) {
		t.Errorf("expected total 1.0, got %f", report.WeightTotal)
	}
	if !report.InTolerance {
		t.Errorf("expected report in tolerance, drift %f", report.Drift)
	}

	// Lines come back ordered by descending weight with 1-decimal percentages
	if len(report.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(report.Lines))
	}
	if report.Lines[0].DriverName != "US generics pricing" {
		t.Errorf("expected heaviest driver first, got %s", report.Lines[0].DriverName)
	}
	wantPct := []float64{50.0, 30.0, 20.0}
	for i, line := range report.Lines {
		if !within(line.WeightPct, wantPct[i], 1e-9) {
			t.Errorf("line %d: expected %.1f%%, got %f", i, wantPct[i], line.WeightPct)
		}
	}
}

func TestVerifyGroupWeightsOutOfTolerance(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	batch := []models.Driver{
		testDriver(models.GroupEnergy, "Refining margins", 0.5),
		testDriver(models.GroupEnergy, "Windfall tax regime", 0.3),
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	report, err := repo.VerifyGroupWeights(models.GroupEnergy, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("VerifyGroupWeights: %v", err)
	}
	if report.InTolerance {
		t.Errorf("expected total 0.8 to be out of tolerance, drift %f", report.Drift)
	}
	if !within(report.Drift, -0.2, 1e-9) {
		t.Errorf("expected drift -0.2, got %f", report.Drift)
	}

	// A repository with a looser tolerance accepts the same slice
	loose := NewRepositoryWithTolerance(db, 0.25)
	report, err = loose.VerifyGroupWeights(models.GroupEnergy, models.DriverLevelGroup)
	if err != nil {
		t.Fatalf("VerifyGroupWeights loose: %v", err)
	}
	if !report.InTolerance {
		t.Errorf("expected drift %f inside loose tolerance", report.Drift)
	}
}

func TestGroupLevels(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	batch := []models.Driver{
		testDriver(models.GroupFinancials, "Credit growth", 0.5),
		testDriver(models.GroupAuto, "Demand cycle", 0.5),
		testDriver(models.GroupAuto, "Cost basket", 0.5),
	}
	if _, _, err := repo.InsertBatch(batch); err != nil {
		t.Fatalf("InsertBatch: %v", err)
	}

	pairs, err := repo.GroupLevels()
	if err != nil {
		t.Fatalf("GroupLevels: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].ValuationGroup != models.GroupAuto || pairs[1].ValuationGroup != models.GroupFinancials {
		t.Errorf("expected AUTO then FINANCIALS, got %s then %s", pairs[0].ValuationGroup, pairs[1].ValuationGroup)
	}
}

func within(got, want, eps float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps
}
