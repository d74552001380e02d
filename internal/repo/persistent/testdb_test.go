package persistent

import (
	"path/filepath"
	"testing"

	"festmap/internal/model"
	"festmap/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema. A single
// connection serializes writers the way the deployment assumes a single
// logical writer stream; sqlite has no row locking to lean on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "festmap_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestLocation(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	loc := model.LocationModel{
		Name:      "Central Plaza",
		Latitude:  35.6588,
		Longitude: 139.5422,
	}
	require.NoError(t, db.Create(&loc).Error)
	return loc.ID
}

func createTestPost(t *testing.T, db *gorm.DB, locationID uint, content, author string) uint {
	t.Helper()

	post := model.PostModel{
		LocationID: locationID,
		Content:    content,
		AuthorName: author,
	}
	require.NoError(t, db.Create(&post).Error)
	return post.ID
}

func storedLikesCount(t *testing.T, db *gorm.DB, postID uint) int {
	t.Helper()

	var post model.PostModel
	require.NoError(t, db.First(&post, postID).Error)
	return post.LikesCount
}

func likeRowCount(t *testing.T, db *gorm.DB, postID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error)
	return count
}
