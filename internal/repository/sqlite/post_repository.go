package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	date TEXT NOT NULL,
	author_id INTEGER NOT NULL REFERENCES users(id),
	author_username TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const postColumns = `id, title, content, date, author_id, author_username, created_at, updated_at`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (int64, error) {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO posts (title, content, date, author_id, author_username, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.Title,
		post.Content,
		post.Date,
		post.AuthorID,
		post.AuthorUsername,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post last insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+postColumns+`
FROM posts
WHERE id = ?`,
		id,
	)

	var post domain.Post
	if err := scanPost(row.Scan, &post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
}

func (r *PostRepository) ListByAuthorID(ctx context.Context, authorID int64) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE author_id = ? ORDER BY id`, authorID)
}

func (r *PostRepository) ListByAuthorUsername(ctx context.Context, username string) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE author_username = ? ORDER BY id`, username)
}

func (r *PostRepository) UpdateContent(ctx context.Context, id int64, title, content string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE posts
SET title = ?, content = ?, updated_at = ?
WHERE id = ?`,
		title, content, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update post rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *PostRepository) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := scanPost(rows.Scan, &post); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func scanPost(scan func(dest ...any) error, post *domain.Post) error {
	return scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Date,
		&post.AuthorID,
		&post.AuthorUsername,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
}
