package domain

import "time"

// User represents a registered author of the blog. PasswordHash is a bcrypt
// digest; the plaintext password never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
