package model

import "time"

// LikeModel rows are hard-deleted on unlike: existence is the only state. The
// composite unique index is the correctness backstop for concurrent likes of
// the same (post, user) pair.
type LikeModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PostID         uint      `gorm:"not null;uniqueIndex:uk_likes_post_user" json:"post_id"`
	UserIdentifier string    `gorm:"type:varchar(100);not null;uniqueIndex:uk_likes_post_user" json:"user_identifier"`
	CreatedAt      time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}
