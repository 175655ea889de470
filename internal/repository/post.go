package repository

import (
	"context"

	"blog-server/internal/domain"
)

// PostRepository defines persistence operations for Post entities. List
// methods return posts in insertion order.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByAuthorID(ctx context.Context, authorID int64) ([]domain.Post, error)
	ListByAuthorUsername(ctx context.Context, username string) ([]domain.Post, error)
	UpdateContent(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
}
