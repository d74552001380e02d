package model

import "time"

// PostModel rows are immutable after creation except for LikesCount, which is
// only ever adjusted inside the like toggle transaction.
type PostModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"not null;index" json:"location_id"`
	Content    string    `gorm:"type:varchar(280);not null" json:"content"`
	ImageURL   string    `gorm:"type:varchar(500)" json:"image_url"`
	AuthorName string    `gorm:"type:varchar(50);not null" json:"author_name"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PostModel) TableName() string {
	return "posts"
}
