package migrations

import "gorm.io/gorm"

// baseSchema creates the valuation tables as they stood before the platform
// and search-query reworks: drivers, social posts, and the event timeline.
// The enum-valued columns carry CHECK constraints so bad writes fail in the
// database, not just in application validation.
type baseSchema struct{}

func (m *baseSchema) Name() string {
	return "0001_base_schema"
}

func (m *baseSchema) Up(tx *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vs_drivers (
			id BIGSERIAL PRIMARY KEY,
			valuation_group VARCHAR(30) NOT NULL,
			driver_level VARCHAR(10) NOT NULL DEFAULT 'GROUP',
			driver_name VARCHAR(150) NOT NULL,
			driver_category VARCHAR(20) NOT NULL,
			impact_direction VARCHAR(10) NOT NULL,
			weight DECIMAL(6,3) NOT NULL,
			trend VARCHAR(10) NOT NULL DEFAULT 'STABLE',
			updated_by VARCHAR(60) NOT NULL DEFAULT 'seeder',
			source VARCHAR(120),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT chk_vs_drivers_group CHECK (valuation_group IN (
				'AUTO', 'TECHNOLOGY', 'HEALTHCARE', 'CONSUMER_STAPLES',
				'CONSUMER_DISCRETIONARY', 'ENERGY', 'FINANCIALS', 'INDUSTRIALS',
				'MATERIALS', 'UTILITIES', 'TELECOM')),
			CONSTRAINT chk_vs_drivers_level CHECK (driver_level IN ('GROUP', 'COMPANY')),
			CONSTRAINT chk_vs_drivers_category CHECK (driver_category IN (
				'MACRO_SIGNAL', 'REGULATORY', 'COST', 'DEMAND',
				'COMPETITIVE', 'SUPPLY_CHAIN', 'SENTIMENT')),
			CONSTRAINT chk_vs_drivers_direction CHECK (impact_direction IN ('POSITIVE', 'NEGATIVE', 'MIXED')),
			CONSTRAINT chk_vs_drivers_trend CHECK (trend IN ('RISING', 'STABLE', 'FALLING')),
			CONSTRAINT chk_vs_drivers_weight CHECK (weight >= 0)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_drivers_group_level_name
			ON vs_drivers (valuation_group, driver_level, driver_name)`,

		`CREATE TABLE IF NOT EXISTS vs_social_posts (
			id BIGSERIAL PRIMARY KEY,
			platform VARCHAR(10) NOT NULL,
			content TEXT NOT NULL,
			company_id BIGINT,
			posted_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT chk_vs_social_posts_platform CHECK (platform IN ('twitter', 'linkedin'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vs_social_posts_platform ON vs_social_posts (platform)`,
		`CREATE INDEX IF NOT EXISTS idx_vs_social_posts_company_id ON vs_social_posts (company_id)`,

		`CREATE TABLE IF NOT EXISTS vs_event_timeline (
			id BIGSERIAL PRIMARY KEY,
			company_id BIGINT NOT NULL,
			event_date TIMESTAMP NOT NULL,
			headline VARCHAR(300) NOT NULL,
			summary TEXT,
			source_url VARCHAR(500),
			search_query VARCHAR(100),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vs_event_timeline_company_id ON vs_event_timeline (company_id)`,
		`CREATE INDEX IF NOT EXISTS idx_vs_event_timeline_event_date ON vs_event_timeline (event_date)`,
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
