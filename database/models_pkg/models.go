package models

import (
	"time"

	"gorm.io/datatypes"
)

// Driver represents a valuation driver: a named factor that moves the fair
// value of a sector or a single company. Drivers are seeded in batches per
// valuation group and their weights are normalized so every (group, level)
// slice sums to 1.0.
//
// Key Fields:
//   - ValuationGroup: Sector tag the driver belongs to (AUTO, TECHNOLOGY, ...)
//   - DriverLevel: GROUP for sector-wide drivers, COMPANY for single-company ones
//   - DriverName: Human-readable factor name, unique within (group, level)
//   - Category: What kind of factor this is (DEMAND, COST, REGULATORY, ...)
//   - ImpactDirection: Which way the factor pushes the valuation
//   - Weight: Relative importance, stored with 3-decimal precision
//   - Trend: How the factor's influence has been moving lately
//   - UpdatedBy/Source: Provenance, who last touched the row and which seed
//     batch it came from
//
// Weight Semantics:
//   - Raw seeded weights are only proportions; NormalizeGroup rescales them
//   - After normalization each (group, level) slice sums to 1.0 within 0.002
//   - Weights are rounded to 3 decimals at normalization time
type Driver struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ValuationGroup  ValuationGroup  `gorm:"size:30;not null;uniqueIndex:idx_drivers_group_level_name,priority:1" json:"valuation_group"`
	DriverLevel     DriverLevel     `gorm:"size:10;not null;default:GROUP;uniqueIndex:idx_drivers_group_level_name,priority:2" json:"driver_level"`
	DriverName      string          `gorm:"size:150;not null;uniqueIndex:idx_drivers_group_level_name,priority:3" json:"driver_name"`
	Category        DriverCategory  `gorm:"column:driver_category;size:20;not null" json:"driver_category"`
	ImpactDirection ImpactDirection `gorm:"size:10;not null" json:"impact_direction"`
	Weight          float64         `gorm:"type:decimal(6,3);not null" json:"weight"`
	Trend           Trend           `gorm:"size:10;not null;default:STABLE" json:"trend"`
	UpdatedBy       string          `gorm:"size:60;not null;default:seeder" json:"updated_by"`
	Source          string          `gorm:"size:120" json:"source,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Driver
func (Driver) TableName() string {
	return "vs_drivers"
}

// WatchlistEntry represents a company enrolled for news scanning.
// Each entry references a company in the external marketscrip table by ID;
// the reference is logical, not a foreign key, because marketscrip belongs
// to another system and is read-only from here.
//
// Key Fields:
//   - CompanyID: marketscrip.id of the company (unique, one entry per company)
//   - IsEnabled: Whether the scanner should pick this company up
//   - Priority: Scan priority (HIGH, MEDIUM, LOW)
//   - ScanSources: Optional JSON override of which feeds to scan
//   - Notes: Free-form annotations; re-seeding appends rather than replaces
//
// Upsert Semantics:
//   - Seeding an existing entry re-enables it and merges notes with " | "
//   - Priority and scan sources are refreshed from the seed batch
type WatchlistEntry struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID   int64          `gorm:"not null;uniqueIndex:idx_watchlist_company" json:"company_id"`
	IsEnabled   bool           `gorm:"not null;default:true;index:idx_watchlist_enabled_priority,priority:1" json:"is_enabled"`
	Priority    Priority       `gorm:"size:10;not null;default:MEDIUM;index:idx_watchlist_enabled_priority,priority:2" json:"priority"`
	ScanSources datatypes.JSON `json:"scan_sources,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	AddedBy     string         `gorm:"size:60;not null;default:seeder" json:"added_by"`
	AddedAt     time.Time      `gorm:"autoCreateTime" json:"added_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for WatchlistEntry
func (WatchlistEntry) TableName() string {
	return "vs_news_watchlist"
}

// SocialPost holds generated social content. Posts on PlatformBoth carry the
// Twitter text in Content and the long-form variant in LinkedInContent.
type SocialPost struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Platform        Platform   `gorm:"size:10;not null;index" json:"platform"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	LinkedInContent *string    `gorm:"column:linkedin_content;type:text" json:"linkedin_content,omitempty"`
	CompanyID       *int64     `gorm:"index" json:"company_id,omitempty"`
	PostedAt        *time.Time `json:"posted_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for SocialPost
func (SocialPost) TableName() string {
	return "vs_social_posts"
}

// TimelineEvent is one entry in a company's news timeline. SearchQuery records
// the query that surfaced the event so scans can be traced back and replayed.
type TimelineEvent struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID   int64     `gorm:"not null;index" json:"company_id"`
	EventDate   time.Time `gorm:"not null;index" json:"event_date"`
	Headline    string    `gorm:"size:300;not null" json:"headline"`
	Summary     string    `gorm:"type:text" json:"summary,omitempty"`
	SourceURL   string    `gorm:"size:500" json:"source_url,omitempty"`
	SearchQuery *string   `gorm:"size:200;index:idx_vs_event_timeline_search_query" json:"search_query,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for TimelineEvent
func (TimelineEvent) TableName() string {
	return "vs_event_timeline"
}

// Marketscrip mirrors the external securities master table. It is owned by
// another system; this module only reads it to resolve tickers to IDs.
type Marketscrip struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Symbol      string `gorm:"size:30;not null;uniqueIndex" json:"symbol"`
	CompanyName string `gorm:"size:200;not null" json:"company_name"`
	Sector      string `gorm:"size:60" json:"sector,omitempty"`
	Exchange    string `gorm:"size:20" json:"exchange,omitempty"`
}

// TableName specifies the table name for Marketscrip
func (Marketscrip) TableName() string {
	return "marketscrip"
}
