package persistent

import (
	"time"

	"festmap/internal/entity"
	"festmap/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	ListByPost(postID uint, limit, offset int) ([]*entity.Comment, error)
	Create(comment *entity.Comment) (*entity.Comment, error)
	GetByID(id uint) (*entity.Comment, error)
	Delete(id uint) (postID uint, err error)
	CountByPost(postID uint) (int64, error)
	ListByAuthor(authorName string, limit, offset int) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

type commentRow struct {
	ID           uint
	PostID       uint
	Content      string
	AuthorName   string
	CreatedAt    time.Time
	PostAuthor   string
	PostContent  string
	LocationName string
}

func (row *commentRow) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:           row.ID,
		PostID:       row.PostID,
		Content:      row.Content,
		AuthorName:   row.AuthorName,
		CreatedAt:    row.CreatedAt,
		PostAuthor:   row.PostAuthor,
		PostContent:  row.PostContent,
		LocationName: row.LocationName,
	}
}

func (r *commentRepository) ListByPost(postID uint, limit, offset int) ([]*entity.Comment, error) {
	var rows []commentRow

	err := r.db.Table("comments").
		Select("comments.id, comments.post_id, comments.content, comments.author_name, comments.created_at, posts.author_name AS post_author").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, rows[i].toEntity())
	}

	return comments, nil
}

func (r *commentRepository) Create(comment *entity.Comment) (*entity.Comment, error) {
	m := ToCommentModel(comment)
	if err := r.db.Create(m).Error; err != nil {
		return nil, err
	}

	return r.GetByID(m.ID)
}

func (r *commentRepository) GetByID(id uint) (*entity.Comment, error) {
	var row commentRow

	res := r.db.Table("comments").
		Select("comments.id, comments.post_id, comments.content, comments.author_name, comments.created_at, posts.author_name AS post_author, posts.content AS post_content").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("comments.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return row.toEntity(), nil
}

func (r *commentRepository) Delete(id uint) (uint, error) {
	var m model.CommentModel
	if err := r.db.First(&m, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, entity.ErrNotFound
		}
		return 0, err
	}

	if err := r.db.Delete(&m).Error; err != nil {
		return 0, err
	}

	return m.PostID, nil
}

func (r *commentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *commentRepository) ListByAuthor(authorName string, limit, offset int) ([]*entity.Comment, error) {
	var rows []commentRow

	err := r.db.Table("comments").
		Select("comments.id, comments.post_id, comments.content, comments.author_name, comments.created_at, posts.author_name AS post_author, posts.content AS post_content, locations.name AS location_name").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Joins("JOIN locations ON locations.id = posts.location_id").
		Where("comments.author_name = ?", authorName).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, rows[i].toEntity())
	}

	return comments, nil
}
