package domain

import "time"

// Post is a blog entry. AuthorUsername is denormalized onto the row so
// listings render without a join, matching what the views need.
type Post struct {
	ID             int64
	Title          string
	Content        string
	Date           string // display date, dd/mm/yyyy
	AuthorID       int64
	AuthorUsername string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
