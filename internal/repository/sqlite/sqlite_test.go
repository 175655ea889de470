package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"blog-server/internal/domain"
	"blog-server/internal/repository"
)

type testRepos struct {
	db       *sql.DB
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	sessions repository.SessionRepository
}

func openTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := &testRepos{
		db:       db,
		users:    NewUserRepository(db),
		posts:    NewPostRepository(db),
		comments: NewCommentRepository(db),
		sessions: NewSessionRepository(db),
	}

	ctx := context.Background()
	require.NoError(t, r.users.Init(ctx))
	require.NoError(t, r.posts.Init(ctx))
	require.NoError(t, r.comments.Init(ctx))
	require.NoError(t, r.sessions.Init(ctx))
	return r
}

func (r *testRepos) mustCreateUser(t *testing.T, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, PasswordHash: "digest"}
	_, err := r.users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func (r *testRepos) mustCreatePost(t *testing.T, author *domain.User, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{
		Title:          title,
		Content:        "content of " + title,
		Date:           time.Now().Format("02/01/2006"),
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
	}
	_, err := r.posts.Create(context.Background(), post)
	require.NoError(t, err)
	return post
}
