package service

import (
	"context"
	"fmt"
	"time"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// ---- in-memory fakes for the repository ports ----

type memUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
	// failWith forces every call to fail, for storage-error paths
	failWith error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[int64]*domain.User{}}
}

func (r *memUserRepo) Init(ctx context.Context) error { return r.failWith }

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return 0, fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

type memPostRepo struct {
	nextID int64
	order  []int64
	posts  map[int64]*domain.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{nextID: 1, posts: map[int64]*domain.Post{}}
}

func (r *memPostRepo) Init(ctx context.Context) error { return nil }

func (r *memPostRepo) Create(ctx context.Context, post *domain.Post) (int64, error) {
	post.ID = r.nextID
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	r.nextID++
	copied := *post
	r.posts[post.ID] = &copied
	r.order = append(r.order, post.ID)
	return post.ID, nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (r *memPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return r.filter(func(*domain.Post) bool { return true }), nil
}

func (r *memPostRepo) ListByAuthorID(ctx context.Context, authorID int64) ([]domain.Post, error) {
	return r.filter(func(p *domain.Post) bool { return p.AuthorID == authorID }), nil
}

func (r *memPostRepo) ListByAuthorUsername(ctx context.Context, username string) ([]domain.Post, error) {
	return r.filter(func(p *domain.Post) bool { return p.AuthorUsername == username }), nil
}

func (r *memPostRepo) UpdateContent(ctx context.Context, id int64, title, content string) error {
	p, ok := r.posts[id]
	if !ok {
		return fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memPostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	delete(r.posts, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memPostRepo) filter(keep func(*domain.Post) bool) []domain.Post {
	var out []domain.Post
	for _, id := range r.order {
		if p := r.posts[id]; keep(p) {
			out = append(out, *p)
		}
	}
	return out
}

type memCommentRepo struct {
	nextID   int64
	comments []domain.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{nextID: 1}
}

func (r *memCommentRepo) Init(ctx context.Context) error { return nil }

func (r *memCommentRepo) Create(ctx context.Context, comment *domain.Comment) (int64, error) {
	comment.ID = r.nextID
	comment.CreatedAt = time.Now().UTC()
	r.nextID++
	r.comments = append(r.comments, *comment)
	return comment.ID, nil
}

func (r *memCommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, cm := range r.comments {
		if cm.PostID == postID {
			out = append(out, cm)
		}
	}
	return out, nil
}

type memSessionRepo struct {
	sessions map[string]*domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*domain.Session{}}
}

func (r *memSessionRepo) Init(ctx context.Context) error { return nil }

func (r *memSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	session.CreatedAt = time.Now().UTC()
	copied := *session
	r.sessions[session.Token] = &copied
	return nil
}

func (r *memSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session: %w", repository.ErrNotFound)
	}
	copied := *s
	return &copied, nil
}

func (r *memSessionRepo) Delete(ctx context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *memSessionRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	for token, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, token)
		}
	}
	return nil
}
