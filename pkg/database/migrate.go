package database

import (
	"fmt"

	"festmap/internal/model"

	"gorm.io/gorm"
)

// Migrate creates the schema from the gorm models. Production deployments run
// the SQL migrations under migrations/ via cmd/migrate instead; this keeps
// development and test databases in sync without goose.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.LocationModel{},
		&model.PostModel{},
		&model.CommentModel{},
		&model.LikeModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Uniqueness backstop for the like toggle: at most one like row per
	// (post, user) pair, enforced by the store as the final authority.
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uk_likes_post_user ON likes(post_id, user_identifier)").Error; err != nil {
		return fmt.Errorf("failed to create likes unique index: %w", err)
	}

	return nil
}
