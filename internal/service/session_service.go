package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// SessionService manages login sessions: opaque tokens stored server-side,
// handed to the client in a cookie.
type SessionService interface {
	Start(ctx context.Context, userID int64) (*domain.Session, error)
	// Resolve turns a token into the logged-in user. Any failure — unknown
	// token, expired session, vanished user — means Anonymous, never an error
	// surfaced to the caller's page.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Destroy(ctx context.Context, token string) error
	Sweep(ctx context.Context) error
}

type sessionService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	ttl      time.Duration
}

func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository, ttl time.Duration) SessionService {
	return &sessionService{
		sessions: sessions,
		users:    users,
		ttl:      ttl,
	}
}

func (s *sessionService) Start(ctx context.Context, userID int64) (*domain.Session, error) {
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.sessions.Delete(ctx, session.Token)
		return nil, ErrNotFound
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *sessionService) Sweep(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx, time.Now().UTC())
}
