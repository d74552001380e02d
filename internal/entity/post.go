package entity

import "time"

// Post is a journal entry pinned to a campus location. LikesCount is
// denormalized and mutated only through the like toggle; it must always match
// the number of like rows referencing the post.
type Post struct {
	ID         uint      `json:"id"`
	LocationID uint      `json:"location_id"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url,omitempty"`
	AuthorName string    `json:"author_name"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`

	// Enriched on read
	LocationName string  `json:"location_name,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
	CommentCount int64   `json:"comment_count"`
}

const (
	PostContentMaxLen = 280
	AuthorNameMaxLen  = 50
)
