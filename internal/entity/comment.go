package entity

import "time"

type Comment struct {
	ID         uint      `json:"id"`
	PostID     uint      `json:"post_id"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`

	// Enriched on read
	PostAuthor   string `json:"post_author,omitempty"`
	PostContent  string `json:"post_content,omitempty"`
	LocationName string `json:"location_name,omitempty"`
}

const CommentContentMaxLen = 500
