package repository

import (
	"context"

	"blog-server/internal/domain"
)

// CommentRepository defines persistence operations for Comment entities.
// Comments are append-only; rows are removed only by the cascade when their
// post is deleted.
type CommentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, comment *domain.Comment) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}
