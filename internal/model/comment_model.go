package model

import "time"

type CommentModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Content    string    `gorm:"type:varchar(500);not null" json:"content"`
	AuthorName string    `gorm:"type:varchar(50);not null" json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
