package persistent

import (
	"errors"
	"time"

	"festmap/internal/entity"
	"festmap/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	// List returns posts newest first, enriched with location name and
	// computed comment count. locationID 0 means no location filter.
	List(limit, offset int, locationID uint) ([]*entity.Post, error)
	GetByID(id uint) (*entity.Post, error)
	Create(post *entity.Post) (*entity.Post, error)
	// Delete removes the post together with its comments and likes as one
	// transaction, so concurrent readers never observe orphaned child rows.
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

type postRow struct {
	ID           uint
	LocationID   uint
	Content      string
	ImageURL     string
	AuthorName   string
	LikesCount   int
	CreatedAt    time.Time
	LocationName string
	Latitude     float64
	Longitude    float64
	CommentCount int64
}

func (row *postRow) toEntity() *entity.Post {
	return &entity.Post{
		ID:           row.ID,
		LocationID:   row.LocationID,
		Content:      row.Content,
		ImageURL:     row.ImageURL,
		AuthorName:   row.AuthorName,
		LikesCount:   row.LikesCount,
		CreatedAt:    row.CreatedAt,
		LocationName: row.LocationName,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		CommentCount: row.CommentCount,
	}
}

func (r *postRepository) List(limit, offset int, locationID uint) ([]*entity.Post, error) {
	var rows []postRow

	query := r.db.Table("posts").
		Select("posts.id, posts.location_id, posts.content, posts.image_url, posts.author_name, posts.likes_count, posts.created_at, locations.name AS location_name, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Joins("JOIN locations ON locations.id = posts.location_id")

	if locationID != 0 {
		query = query.Where("posts.location_id = ?", locationID)
	}

	err := query.Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toEntity())
	}

	return posts, nil
}

func (r *postRepository) GetByID(id uint) (*entity.Post, error) {
	var row postRow

	res := r.db.Table("posts").
		Select("posts.id, posts.location_id, posts.content, posts.image_url, posts.author_name, posts.likes_count, posts.created_at, locations.name AS location_name, locations.latitude, locations.longitude, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Joins("JOIN locations ON locations.id = posts.location_id").
		Where("posts.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return row.toEntity(), nil
}

func (r *postRepository) Create(post *entity.Post) (*entity.Post, error) {
	m := ToPostModel(post)
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}

	return r.GetByID(m.ID)
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.PostModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

func (r *postRepository) Exists(id uint) (bool, error) {
	var m model.PostModel
	err := r.db.Select("id").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
