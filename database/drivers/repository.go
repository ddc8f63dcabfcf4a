package drivers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"valuationdb/database"
	models "valuationdb/database/models_pkg"
	"valuationdb/database/types"

	"gorm.io/gorm"
)

// Repository handles database operations for valuation drivers
type Repository struct {
	db        *gorm.DB
	tolerance float64
}

// NewRepository creates a new drivers repository with the default weight
// tolerance
func NewRepository(db *gorm.DB) *Repository {
	return NewRepositoryWithTolerance(db, database.WeightSumTolerance)
}

// NewRepositoryWithTolerance creates a drivers repository with an explicit
// verification tolerance
func NewRepositoryWithTolerance(db *gorm.DB, tolerance float64) *Repository {
	if tolerance <= 0 {
		tolerance = database.WeightSumTolerance
	}
	return &Repository{db: db, tolerance: tolerance}
}

// GroupLevel identifies one normalization slice
type GroupLevel struct {
	ValuationGroup models.ValuationGroup `json:"valuation_group"`
	DriverLevel    models.DriverLevel    `json:"driver_level"`
}

// InsertBatch inserts a batch of drivers inside a single transaction.
// Rows whose (group, level, name) already exist are skipped so re-running a
// seed never duplicates or overwrites earlier rows. The whole batch is
// validated before anything is written.
func (r *Repository) InsertBatch(batch []models.Driver) (inserted, skipped int64, err error) {
	if len(batch) == 0 {
		return 0, 0, nil
	}

	for i := range batch {
		if err := validateDriver(&batch[i]); err != nil {
			return 0, 0, err
		}
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		for i := range batch {
			d := batch[i]

			var count int64
			if err := tx.Model(&models.Driver{}).
				Where("valuation_group = ? AND driver_level = ? AND driver_name = ?",
					d.ValuationGroup, d.DriverLevel, d.DriverName).
				Count(&count).Error; err != nil {
				return fmt.Errorf("InsertBatch exists check: %w", err)
			}
			if count > 0 {
				skipped++
				continue
			}

			if err := tx.Create(&d).Error; err != nil {
				return fmt.Errorf("InsertBatch create %s: %w", d.DriverName, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, skipped, nil
}

// NormalizeGroup rescales one (group, level) slice so its weights sum to 1.0.
// The sum and the update run in one transaction; a slice whose raw weights
// sum to zero fails before anything is written. Weights are rounded to
// 3 decimals, so the stored total may drift from 1.0 by up to the tolerance.
func (r *Repository) NormalizeGroup(group models.ValuationGroup, level models.DriverLevel) (*types.NormalizeResult, error) {
	result := &types.NormalizeResult{
		ValuationGroup: string(group),
		DriverLevel:    string(level),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Driver{}).
			Where("valuation_group = ? AND driver_level = ?", group, level).
			Count(&result.RowCount).Error; err != nil {
			return fmt.Errorf("NormalizeGroup count: %w", err)
		}
		if result.RowCount == 0 {
			return database.NewNotFoundErrorWithID("drivers", fmt.Sprintf("%s/%s", group, level))
		}

		if err := tx.Model(&models.Driver{}).
			Where("valuation_group = ? AND driver_level = ?", group, level).
			Select("COALESCE(SUM(weight), 0)").
			Scan(&result.RawTotal).Error; err != nil {
			return fmt.Errorf("NormalizeGroup sum: %w", err)
		}
		if result.RawTotal <= 0 {
			return database.NewValidationErrorWithValue("weight",
				fmt.Sprintf("total for %s/%s must be positive", group, level), result.RawTotal)
		}

		if err := tx.Model(&models.Driver{}).
			Where("valuation_group = ? AND driver_level = ?", group, level).
			Updates(map[string]interface{}{
				"weight":     gorm.Expr("ROUND(weight / ?, ?)", result.RawTotal, database.WeightPrecision),
				"updated_by": database.NormalizerActor,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("NormalizeGroup update: %w", err)
		}

		if err := tx.Model(&models.Driver{}).
			Where("valuation_group = ? AND driver_level = ?", group, level).
			Select("COALESCE(SUM(weight), 0)").
			Scan(&result.NormalizedTotal).Error; err != nil {
			return fmt.Errorf("NormalizeGroup verify sum: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// NormalizeAll normalizes every (group, level) slice present in the table.
// Each slice runs in its own transaction, so one bad group does not roll back
// the groups already normalized.
func (r *Repository) NormalizeAll() ([]types.NormalizeResult, error) {
	pairs, err := r.GroupLevels()
	if err != nil {
		return nil, err
	}

	results := make([]types.NormalizeResult, 0, len(pairs))
	for _, p := range pairs {
		res, err := r.NormalizeGroup(p.ValuationGroup, p.DriverLevel)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// VerifyGroupWeights builds the verification report for one (group, level)
// slice: driver count, weight total, and each driver's percentage share
// rounded to 1 decimal.
func (r *Repository) VerifyGroupWeights(group models.ValuationGroup, level models.DriverLevel) (*types.GroupWeightReport, error) {
	rows, err := r.ListByGroup(group, level)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, database.NewNotFoundErrorWithID("drivers", fmt.Sprintf("%s/%s", group, level))
	}

	report := &types.GroupWeightReport{
		ValuationGroup: string(group),
		DriverLevel:    string(level),
		DriverCount:    int64(len(rows)),
		Lines:          make([]types.DriverWeightLine, 0, len(rows)),
	}
	for _, d := range rows {
		report.WeightTotal += d.Weight
		report.Lines = append(report.Lines, types.DriverWeightLine{
			DriverName: d.DriverName,
			Category:   string(d.Category),
			Weight:     d.Weight,
			WeightPct:  math.Round(d.Weight*1000) / 10,
		})
	}
	report.Drift = report.WeightTotal - database.WeightSumTarget
	report.InTolerance = math.Abs(report.Drift) <= r.tolerance
	return report, nil
}

// VerifyAll reports on every (group, level) slice present in the table
func (r *Repository) VerifyAll() ([]types.GroupWeightReport, error) {
	pairs, err := r.GroupLevels()
	if err != nil {
		return nil, err
	}

	reports := make([]types.GroupWeightReport, 0, len(pairs))
	for _, p := range pairs {
		rep, err := r.VerifyGroupWeights(p.ValuationGroup, p.DriverLevel)
		if err != nil {
			return reports, err
		}
		reports = append(reports, *rep)
	}
	return reports, nil
}

// GroupLevels returns the distinct (group, level) pairs in the table
func (r *Repository) GroupLevels() ([]GroupLevel, error) {
	var pairs []GroupLevel
	if err := r.db.Model(&models.Driver{}).
		Distinct("valuation_group", "driver_level").
		Order("valuation_group, driver_level").
		Find(&pairs).Error; err != nil {
		return nil, fmt.Errorf("GroupLevels: %w", err)
	}
	return pairs, nil
}

// ListByGroup retrieves one (group, level) slice ordered by descending weight
func (r *Repository) ListByGroup(group models.ValuationGroup, level models.DriverLevel) ([]models.Driver, error) {
	var rows []models.Driver
	if err := r.db.
		Where("valuation_group = ? AND driver_level = ?", group, level).
		Order("weight DESC, driver_name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("ListByGroup: %w", err)
	}
	return rows, nil
}

// validateDriver fills enum defaults and rejects values outside the enum sets
func validateDriver(d *models.Driver) error {
	if strings.TrimSpace(d.DriverName) == "" {
		return database.NewValidationError("driver_name", "must not be empty")
	}
	if len(d.DriverName) > database.DriverNameMaxLen {
		return database.NewValidationErrorWithValue("driver_name", "too long", d.DriverName)
	}
	if !d.ValuationGroup.Valid() {
		return database.NewValidationErrorWithValue("valuation_group", "unknown valuation group", d.ValuationGroup)
	}
	if d.DriverLevel == "" {
		d.DriverLevel = models.DriverLevelGroup
	}
	if !d.DriverLevel.Valid() {
		return database.NewValidationErrorWithValue("driver_level", "unknown driver level", d.DriverLevel)
	}
	if !d.Category.Valid() {
		return database.NewValidationErrorWithValue("category", "unknown category", d.Category)
	}
	if !d.ImpactDirection.Valid() {
		return database.NewValidationErrorWithValue("impact_direction", "unknown impact direction", d.ImpactDirection)
	}
	if d.Trend == "" {
		d.Trend = models.TrendStable
	}
	if !d.Trend.Valid() {
		return database.NewValidationErrorWithValue("trend", "unknown trend", d.Trend)
	}
	if d.Weight <= 0 {
		return database.NewValidationErrorWithValue("weight", "must be positive", d.Weight)
	}
	if d.UpdatedBy == "" {
		d.UpdatedBy = database.DefaultAddedBy
	}
	return nil
}
