package persistent

import (
	"errors"
	"time"

	"festmap/internal/entity"
	"festmap/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	// AddLike creates a like row for (postID, userIdentifier) and increments
	// the denormalized counter, all in one transaction. It returns the fresh
	// counter value. entity.ErrNotFound when the post does not exist,
	// entity.ErrAlreadyExists when the pair is already liked.
	AddLike(postID uint, userIdentifier string) (int, error)
	// RemoveLike deletes the like row and decrements the counter in one
	// transaction, returning the fresh counter value. entity.ErrNotFound when
	// no like row exists for the pair.
	RemoveLike(postID uint, userIdentifier string) (int, error)
	CountByPost(postID uint) (int64, error)
	LikedUsers(postID uint) ([]string, error)
	LikedPosts(userIdentifier string, limit, offset int) ([]*entity.LikedPost, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) AddLike(postID uint, userIdentifier string) (int, error) {
	var count int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&model.PostModel{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
			return err
		}
		if postCount == 0 {
			return entity.ErrNotFound
		}

		var existing int64
		if err := tx.Model(&model.LikeModel{}).
			Where("post_id = ? AND user_identifier = ?", postID, userIdentifier).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return entity.ErrAlreadyExists
		}

		like := &model.LikeModel{PostID: postID, UserIdentifier: userIdentifier}
		if err := tx.Create(like).Error; err != nil {
			// Unique index backstop: a racing insert for the same pair loses
			// here and the whole transaction rolls back, counter untouched.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return entity.ErrAlreadyExists
			}
			return err
		}

		if err := tx.Model(&model.PostModel{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
			return err
		}

		return readLikesCount(tx, postID, &count)
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *likeRepository) RemoveLike(postID uint, userIdentifier string) (int, error) {
	var count int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// RowsAffected doubles as the existence check, so two racing unlikes
		// cannot both decrement.
		res := tx.Where("post_id = ? AND user_identifier = ?", postID, userIdentifier).
			Delete(&model.LikeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		if err := tx.Model(&model.PostModel{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
			return err
		}

		return readLikesCount(tx, postID, &count)
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// readLikesCount reads the stored counter with a floor of zero. The counter is
// never reported negative even if it drifted in a database mutated outside
// the toggle transactions.
func readLikesCount(tx *gorm.DB, postID uint, count *int) error {
	if err := tx.Table("posts").Select("likes_count").Where("id = ?", postID).Scan(count).Error; err != nil {
		return err
	}
	if *count < 0 {
		*count = 0
	}
	return nil
}

func (r *likeRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *likeRepository) LikedUsers(postID uint) ([]string, error) {
	users := make([]string, 0)
	err := r.db.Model(&model.LikeModel{}).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Pluck("user_identifier", &users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

type likedPostRow struct {
	ID           uint
	LocationID   uint
	Content      string
	ImageURL     string
	AuthorName   string
	LikesCount   int
	CreatedAt    time.Time
	LocationName string
	LikedAt      time.Time
}

func (r *likeRepository) LikedPosts(userIdentifier string, limit, offset int) ([]*entity.LikedPost, error) {
	var rows []likedPostRow

	err := r.db.Table("likes").
		Select("posts.id, posts.location_id, posts.content, posts.image_url, posts.author_name, posts.likes_count, posts.created_at, locations.name AS location_name, likes.created_at AS liked_at").
		Joins("JOIN posts ON posts.id = likes.post_id").
		Joins("JOIN locations ON locations.id = posts.location_id").
		Where("likes.user_identifier = ?", userIdentifier).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.LikedPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, &entity.LikedPost{
			Post: entity.Post{
				ID:           row.ID,
				LocationID:   row.LocationID,
				Content:      row.Content,
				ImageURL:     row.ImageURL,
				AuthorName:   row.AuthorName,
				LikesCount:   row.LikesCount,
				CreatedAt:    row.CreatedAt,
				LocationName: row.LocationName,
			},
			LikedAt: row.LikedAt,
		})
	}

	return posts, nil
}
