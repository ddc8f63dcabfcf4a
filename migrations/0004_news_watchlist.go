package migrations

import "gorm.io/gorm"

// newsWatchlist creates the vs_news_watchlist table that enrolls companies
// for news scanning. company_id references the external marketscrip table
// logically rather than with a foreign key, since that table belongs to
// another system and may be restored independently.
type newsWatchlist struct{}

func (m *newsWatchlist) Name() string {
	return "0004_news_watchlist"
}

func (m *newsWatchlist) Up(tx *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vs_news_watchlist (
			id BIGSERIAL PRIMARY KEY,
			company_id BIGINT NOT NULL,
			is_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			priority VARCHAR(10) NOT NULL DEFAULT 'MEDIUM',
			scan_sources JSONB,
			notes TEXT,
			added_by VARCHAR(60) NOT NULL DEFAULT 'seeder',
			added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT chk_vs_news_watchlist_priority CHECK (priority IN ('HIGH', 'MEDIUM', 'LOW'))
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_watchlist_company ON vs_news_watchlist (company_id)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlist_enabled_priority
			ON vs_news_watchlist (is_enabled, priority)`,
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
