package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// CommentService appends comments to posts. Comments carry only the author's
// display name and are never edited.
type CommentService interface {
	Add(ctx context.Context, identity *domain.User, postID int64, text string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
	}
}

func (s *commentService) Add(ctx context.Context, identity *domain.User, postID int64, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}

	// a comment must reference a live post
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		PostID:         postID,
		AuthorUsername: identity.Username,
		Text:           text,
	}
	if _, err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}
