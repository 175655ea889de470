package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

// displayDateLayout matches the dd/mm/yyyy strings the views render.
const displayDateLayout = "02/01/2006"

// PostService describes blog post operations. Every mutation takes the acting
// identity and refuses to touch posts the identity does not own.
type PostService interface {
	Compose(ctx context.Context, author *domain.User, title, content string) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	ListAll(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Post, error)
	Update(ctx context.Context, identity *domain.User, id int64, title, content string) error
	Delete(ctx context.Context, identity *domain.User, id int64) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Compose(ctx context.Context, author *domain.User, title, content string) (*domain.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	post := &domain.Post{
		Title:          title,
		Content:        content,
		Date:           time.Now().Format(displayDateLayout),
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) ListAll(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	return s.posts.ListByAuthorID(ctx, authorID)
}

func (s *postService) ListByUsername(ctx context.Context, username string) ([]domain.Post, error) {
	return s.posts.ListByAuthorUsername(ctx, username)
}

func (s *postService) Update(ctx context.Context, identity *domain.User, id int64, title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}

	if err := s.authorize(ctx, identity, id); err != nil {
		return err
	}

	// only title and content change; id, author, and date stay as composed
	if err := s.posts.UpdateContent(ctx, id, title, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, identity *domain.User, id int64) error {
	if err := s.authorize(ctx, identity, id); err != nil {
		return err
	}

	// comments go with the post via the foreign key cascade
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// authorize fetches the post and checks the acting identity owns it.
func (s *postService) authorize(ctx context.Context, identity *domain.User, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if identity == nil || post.AuthorID != identity.ID {
		return ErrForbidden
	}
	return nil
}
