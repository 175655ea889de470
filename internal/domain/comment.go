package domain

import "time"

// Comment is an append-only reply attached to a post. Comments are never
// edited or deleted individually; they go away with their post.
type Comment struct {
	ID             int64
	PostID         int64
	AuthorUsername string
	Text           string
	CreatedAt      time.Time
}
