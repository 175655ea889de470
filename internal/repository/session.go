package repository

import (
	"context"
	"time"

	"blog-server/internal/domain"
)

// SessionRepository is the pluggable session store: get/set/destroy by token.
// The sqlite implementation makes logins survive restarts; tests swap in an
// in-memory one.
type SessionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) error
}
