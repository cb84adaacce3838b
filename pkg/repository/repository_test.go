package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()

	cfg := Config{
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	cleanup = func() {
		assert.NoError(t, repos.Close())
	}
	return repos, cleanup
}

// createTestFeed inserts a feed and returns it
func createTestFeed(t *testing.T, repos *Repositories, url string) *domain.Feed {
	t.Helper()

	feed := &domain.Feed{URL: url, Title: "Feed " + url}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))
	return feed
}

func TestRepositories_Integration(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repos.Ping(context.Background()))

	t.Run("schema is idempotent", func(t *testing.T) {
		require.NoError(t, initSchema(context.Background(), repos.DB))
	})

	t.Run("cascade delete wipes articles", func(t *testing.T) {
		feed := createTestFeed(t, repos, "https://example.com/cascade.xml")

		err := repos.Article.CreateArticles(context.Background(), feed.ID, []domain.Candidate{
			{GUID: "cascade-1", Link: "https://example.com/cascade/1", Title: "one"},
		})
		require.NoError(t, err)

		require.NoError(t, repos.Feed.DeleteFeed(context.Background(), feed.ID))

		count := -1
		err = repos.DB.GetContext(context.Background(), &count,
			"SELECT COUNT(*) FROM articles WHERE feed_id = ?", feed.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRepositories_ConnLifetime(t *testing.T) {
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer repos.Close() //nolint:errcheck

	require.NoError(t, repos.Ping(context.Background()))
}
