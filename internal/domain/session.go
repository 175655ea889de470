package domain

import "time"

// Session is server-side login state keyed by an opaque token held by the
// client in a cookie. Sessions persist in the database so logins survive
// process restarts.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
