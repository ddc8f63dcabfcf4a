package content

import (
	"fmt"
	"strings"
	"time"

	"valuationdb/database"
	models "valuationdb/database/models_pkg"

	"gorm.io/gorm"
)

// Repository handles database operations for generated content records
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new content repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveSocialPost persists a generated post. Content always carries the
// primary text; LinkedInContent is the optional long-form variant used when
// a post goes out on both networks. Only the platform enumeration is
// enforced across fields.
func (r *Repository) SaveSocialPost(post *models.SocialPost) error {
	if !post.Platform.Valid() {
		return database.NewValidationErrorWithValue("platform", "unknown platform", post.Platform)
	}
	if strings.TrimSpace(post.Content) == "" {
		return database.NewValidationError("content", "must not be empty")
	}

	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("SaveSocialPost: %w", err)
	}
	return nil
}

// ListRecentPosts retrieves recent posts, optionally filtered by platform
func (r *Repository) ListRecentPosts(platform models.Platform, limit int) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	query := r.db.Order("created_at DESC").Limit(clampLimit(limit))

	if platform != "" {
		if !platform.Valid() {
			return nil, database.NewValidationErrorWithValue("platform", "unknown platform", platform)
		}
		query = query.Where("platform = ?", platform)
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("ListRecentPosts: %w", err)
	}
	return posts, nil
}

// RecordTimelineEvent appends one event to a company's news timeline
func (r *Repository) RecordTimelineEvent(event *models.TimelineEvent) error {
	if event.CompanyID <= 0 {
		return database.NewValidationErrorWithValue("company_id", "must be positive", event.CompanyID)
	}
	if strings.TrimSpace(event.Headline) == "" {
		return database.NewValidationError("headline", "must not be empty")
	}
	if len(event.Headline) > database.HeadlineMaxLen {
		return database.NewValidationErrorWithValue("headline", "too long", len(event.Headline))
	}
	if event.SearchQuery != nil && len(*event.SearchQuery) > database.SearchQueryMaxLen {
		return database.NewValidationErrorWithValue("search_query", "too long", len(*event.SearchQuery))
	}
	if event.EventDate.IsZero() {
		event.EventDate = time.Now()
	}

	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("RecordTimelineEvent: %w", err)
	}
	return nil
}

// EventsBySearchQuery retrieves the events a given scan query surfaced,
// newest first. The search_query index keeps this cheap for replay tooling.
func (r *Repository) EventsBySearchQuery(searchQuery string, limit int) ([]models.TimelineEvent, error) {
	var events []models.TimelineEvent
	if err := r.db.
		Where("search_query = ?", searchQuery).
		Order("event_date DESC").
		Limit(clampLimit(limit)).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("EventsBySearchQuery: %w", err)
	}
	return events, nil
}

// RecentEvents retrieves a company's timeline, newest first
func (r *Repository) RecentEvents(companyID int64, limit int) ([]models.TimelineEvent, error) {
	var events []models.TimelineEvent
	if err := r.db.
		Where("company_id = ?", companyID).
		Order("event_date DESC").
		Limit(clampLimit(limit)).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("RecentEvents: %w", err)
	}
	return events, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return database.DefaultLimit
	}
	if limit > database.MaxLimit {
		return database.MaxLimit
	}
	return limit
}
