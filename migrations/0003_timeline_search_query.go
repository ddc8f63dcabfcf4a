package migrations

import "gorm.io/gorm"

// timelineSearchQuery widens vs_event_timeline.search_query to 200 characters
// and indexes it so scans can be traced back by the query that produced them.
// Older databases may not have the column at all, so it is added first; the
// type change is a no-op when the column is already wide enough.
type timelineSearchQuery struct{}

func (m *timelineSearchQuery) Name() string {
	return "0003_timeline_search_query"
}

func (m *timelineSearchQuery) Up(tx *gorm.DB) error {
	statements := []string{
		`ALTER TABLE vs_event_timeline ADD COLUMN IF NOT EXISTS search_query VARCHAR(200)`,
		`ALTER TABLE vs_event_timeline ALTER COLUMN search_query TYPE VARCHAR(200)`,
		`CREATE INDEX IF NOT EXISTS idx_vs_event_timeline_search_query
			ON vs_event_timeline (search_query)`,
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
