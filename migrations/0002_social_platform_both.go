package migrations

import "gorm.io/gorm"

// socialPlatformBoth widens the social post platform enum with 'both' for
// posts published to Twitter and LinkedIn at once, and adds the
// linkedin_content column that carries the long-form variant of such posts.
// The constraint is dropped and re-added in one transaction, which keeps the
// migration re-runnable.
type socialPlatformBoth struct{}

func (m *socialPlatformBoth) Name() string {
	return "0002_social_platform_both"
}

func (m *socialPlatformBoth) Up(tx *gorm.DB) error {
	statements := []string{
		`ALTER TABLE vs_social_posts DROP CONSTRAINT IF EXISTS chk_vs_social_posts_platform`,
		`ALTER TABLE vs_social_posts ADD CONSTRAINT chk_vs_social_posts_platform
			CHECK (platform IN ('twitter', 'linkedin', 'both'))`,
		`ALTER TABLE vs_social_posts ADD COLUMN IF NOT EXISTS linkedin_content TEXT`,
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
