package entity

import "time"

// UserIdentifierMaxLen bounds the caller-supplied anonymous identifier. The
// server trusts the value as-is; this is a documented trust boundary, not an
// authentication mechanism.
const UserIdentifierMaxLen = 100

// LikeSummary is the authoritative state of a post's likes after a read or a
// toggle: the fresh counter value and the identifiers that currently like it,
// ordered by like time.
type LikeSummary struct {
	PostID     uint     `json:"post_id"`
	LikeCount  int      `json:"like_count"`
	LikedUsers []string `json:"liked_users"`
}

// LikedPost is a post a user has liked, joined with its location name and the
// moment the like was created.
type LikedPost struct {
	Post
	LikedAt time.Time `json:"liked_at"`
}
