package watchlist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"valuationdb/database"
	models "valuationdb/database/models_pkg"

	"gorm.io/gorm"
)

// Repository handles database operations for the news watchlist
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new watchlist repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ResolveCompanyID looks a ticker up in the external marketscrip table.
// Symbols are matched exactly; an unknown symbol returns a NotFoundError the
// caller can test for with errors.As.
func (r *Repository) ResolveCompanyID(symbol string) (int64, error) {
	var scrip models.Marketscrip
	err := r.db.Where("symbol = ?", symbol).First(&scrip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, database.NewNotFoundErrorWithID("marketscrip symbol", symbol)
	}
	if err != nil {
		return 0, fmt.Errorf("ResolveCompanyID: %w", err)
	}
	return scrip.ID, nil
}

// Upsert inserts a watchlist entry, or re-enables and annotates the existing
// one for the same company. Existing entries keep their row: the entry is
// switched on, priority and scan sources are refreshed from the incoming
// record, and the incoming note is appended to the stored notes unless it is
// already there. The lookup and the write run in one transaction.
func (r *Repository) Upsert(entry *models.WatchlistEntry) (created bool, err error) {
	if entry.CompanyID <= 0 {
		return false, database.NewValidationErrorWithValue("company_id", "must be positive", entry.CompanyID)
	}
	if entry.Priority == "" {
		entry.Priority = models.PriorityMedium
	}
	if !entry.Priority.Valid() {
		return false, database.NewValidationErrorWithValue("priority", "unknown priority", entry.Priority)
	}
	if entry.AddedBy == "" {
		entry.AddedBy = database.DefaultAddedBy
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.WatchlistEntry
		lookupErr := tx.Where("company_id = ?", entry.CompanyID).First(&existing).Error
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			entry.IsEnabled = true
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("Upsert create: %w", err)
			}
			created = true
			return nil
		}
		if lookupErr != nil {
			return fmt.Errorf("Upsert lookup: %w", lookupErr)
		}

		updates := map[string]interface{}{
			"is_enabled": true,
			"priority":   entry.Priority,
			"updated_at": time.Now(),
		}
		if len(entry.ScanSources) > 0 {
			updates["scan_sources"] = entry.ScanSources
		}
		if merged, changed := mergeNotes(existing.Notes, entry.Notes); changed {
			updates["notes"] = merged
		}

		if err := tx.Model(&models.WatchlistEntry{}).
			Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("Upsert update: %w", err)
		}
		entry.ID = existing.ID
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// EnabledEntries returns the active watchlist, highest priority first
func (r *Repository) EnabledEntries() ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := r.db.
		Where("is_enabled = ?", true).
		Order("CASE priority WHEN 'HIGH' THEN 0 WHEN 'MEDIUM' THEN 1 ELSE 2 END, company_id").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("EnabledEntries: %w", err)
	}
	return entries, nil
}

// EntryByCompanyID retrieves a single entry by its company reference
func (r *Repository) EntryByCompanyID(companyID int64) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.db.Where("company_id = ?", companyID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.NewNotFoundErrorWithID("watchlist entry", companyID)
	}
	if err != nil {
		return nil, fmt.Errorf("EntryByCompanyID: %w", err)
	}
	return &entry, nil
}

// SetEnabled switches a single entry on or off
func (r *Repository) SetEnabled(companyID int64, enabled bool) error {
	res := r.db.Model(&models.WatchlistEntry{}).
		Where("company_id = ?", companyID).
		Updates(map[string]interface{}{
			"is_enabled": enabled,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("SetEnabled: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.NewNotFoundErrorWithID("watchlist entry", companyID)
	}
	return nil
}

// CountEnabled returns how many entries the scanner currently picks up
func (r *Repository) CountEnabled() (int64, error) {
	var count int64
	if err := r.db.Model(&models.WatchlistEntry{}).
		Where("is_enabled = ?", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("CountEnabled: %w", err)
	}
	return count, nil
}

// mergeNotes appends the incoming note to the stored notes unless the stored
// notes already contain it, so re-seeding never stacks duplicate annotations
func mergeNotes(existing, incoming string) (string, bool) {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" {
		return existing, false
	}
	if existing == "" {
		return incoming, true
	}
	if strings.Contains(existing, incoming) {
		return existing, false
	}
	return existing + database.NotesSeparator + incoming, true
}
