package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr)
	assert.Equal(t, "data/blog.db", cfg.Database.Path)
	assert.Equal(t, "blog_session", cfg.Session.CookieName)
	assert.Equal(t, 168, cfg.Session.TTLHours)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BLOG_SERVER_ADDR", "127.0.0.1:8081")
	t.Setenv("BLOG_DATABASE_PATH", "/tmp/test-blog.db")
	t.Setenv("BLOG_SESSION_TTLHOURS", "24")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr)
	assert.Equal(t, "/tmp/test-blog.db", cfg.Database.Path)
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("BLOG_SESSION_TTLHOURS", "0")

	_, err := Load()
	require.Error(t, err)
}
