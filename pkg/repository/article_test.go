package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

func TestArticleRepository_CreateArticles(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	feed := createTestFeed(t, repos, "https://example.com/feed.xml")

	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	candidates := []domain.Candidate{
		{GUID: "g1", Link: "https://example.com/1", Title: "One", Description: "d1", Content: "<p>c1</p>", Author: "ann", Published: &published},
		{Link: "https://example.com/2", Title: "Two", ContentHash: "hash-two"},
	}
	require.NoError(t, repos.Article.CreateArticles(ctx, feed.ID, candidates))

	articles, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feed.ID})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	t.Run("fields round-trip", func(t *testing.T) {
		byLink := map[string]domain.Article{}
		for _, a := range articles {
			byLink[a.Link] = a
		}

		one := byLink["https://example.com/1"]
		assert.Equal(t, "g1", one.GUID)
		assert.Equal(t, "One", one.Title)
		assert.Equal(t, "<p>c1</p>", one.Content)
		assert.Equal(t, "ann", one.Author)
		assert.Empty(t, one.ContentHash)
		require.NotNil(t, one.Published)
		assert.WithinDuration(t, published, *one.Published, time.Second)
		assert.False(t, one.Read)

		two := byLink["https://example.com/2"]
		assert.Empty(t, two.GUID)
		assert.Equal(t, "hash-two", two.ContentHash)
		assert.Nil(t, two.Published)
	})

	t.Run("conflicting rows silently ignored", func(t *testing.T) {
		again := []domain.Candidate{
			{GUID: "g1", Link: "https://example.com/1-copy", Title: "dup guid"},
			{Link: "https://example.com/2", Title: "dup link"},
			{GUID: "g3", Link: "https://example.com/3", Title: "new"},
		}
		require.NoError(t, repos.Article.CreateArticles(ctx, feed.ID, again))

		articles, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feed.ID})
		require.NoError(t, err)
		assert.Len(t, articles, 3, "only the genuinely new row lands")
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repos.Article.CreateArticles(ctx, feed.ID, nil))
	})

	t.Run("same hash allowed across feeds", func(t *testing.T) {
		other := createTestFeed(t, repos, "https://other.example.com/feed.xml")
		err := repos.Article.CreateArticles(ctx, other.ID, []domain.Candidate{
			{Link: "https://other.example.com/2", Title: "Two elsewhere", ContentHash: "hash-two"},
		})
		require.NoError(t, err)

		articles, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: other.ID})
		require.NoError(t, err)
		assert.Len(t, articles, 1)
	})
}

func TestArticleRepository_FindLookups(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	feedA := createTestFeed(t, repos, "https://a.example.com/feed.xml")
	feedB := createTestFeed(t, repos, "https://b.example.com/feed.xml")

	require.NoError(t, repos.Article.CreateArticles(ctx, feedA.ID, []domain.Candidate{
		{GUID: "a-guid", Link: "https://a.example.com/1", Title: "a1"},
		{Link: "https://a.example.com/2", Title: "a2", ContentHash: "hash-a"},
	}))
	require.NoError(t, repos.Article.CreateArticles(ctx, feedB.ID, []domain.Candidate{
		{GUID: "b-guid", Link: "https://b.example.com/1", Title: "b1"},
	}))

	t.Run("guids global", func(t *testing.T) {
		found, err := repos.Article.FindGUIDs(ctx, []string{"a-guid", "b-guid", "missing"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a-guid", "b-guid"}, found)
	})

	t.Run("links global", func(t *testing.T) {
		found, err := repos.Article.FindLinks(ctx, []string{"https://a.example.com/2", "https://nowhere.example.com/x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com/2"}, found)
	})

	t.Run("content hashes scoped to feed", func(t *testing.T) {
		found, err := repos.Article.FindContentHashes(ctx, feedA.ID, []string{"hash-a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"hash-a"}, found)

		found, err = repos.Article.FindContentHashes(ctx, feedB.ID, []string{"hash-a"})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		found, err := repos.Article.FindGUIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestArticleRepository_GetArticles(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	feedA := createTestFeed(t, repos, "https://a.example.com/feed.xml")
	feedB := createTestFeed(t, repos, "https://b.example.com/feed.xml")

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Article.CreateArticles(ctx, feedA.ID, []domain.Candidate{
		{GUID: "old", Link: "https://a.example.com/old", Title: "old", Published: &older},
		{GUID: "new", Link: "https://a.example.com/new", Title: "new", Published: &newer},
	}))
	require.NoError(t, repos.Article.CreateArticles(ctx, feedB.ID, []domain.Candidate{
		{GUID: "b", Link: "https://b.example.com/1", Title: "b", Published: &older},
	}))

	t.Run("newest first", func(t *testing.T) {
		articles, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feedA.ID})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "new", articles[0].Title)
		assert.Equal(t, "old", articles[1].Title)
	})

	t.Run("group filter", func(t *testing.T) {
		group := &domain.Group{Name: "tech"}
		require.NoError(t, repos.Group.CreateGroup(ctx, group))
		require.NoError(t, repos.Group.AddFeeds(ctx, group.ID, []int64{feedA.ID}))

		articles, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{GroupID: group.ID})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		for _, a := range articles {
			assert.Equal(t, feedA.ID, a.FeedID)
		}
	})

	t.Run("unread only", func(t *testing.T) {
		all, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feedA.ID})
		require.NoError(t, err)
		require.NoError(t, repos.Article.SetReadState(ctx, []int64{all[0].ID}, true))

		unread, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feedA.ID, UnreadOnly: true})
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "old", unread[0].Title)
	})

	t.Run("limit and offset", func(t *testing.T) {
		page, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feedA.ID, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "new", page[0].Title)

		next, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feedA.ID, Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, next, 1)
		assert.Equal(t, "old", next[0].Title)
	})
}

func TestArticleRepository_ReadState(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	feed := createTestFeed(t, repos, "https://example.com/feed.xml")
	require.NoError(t, repos.Article.CreateArticles(ctx, feed.ID, []domain.Candidate{
		{GUID: "r1", Link: "https://example.com/r1", Title: "r1"},
		{GUID: "r2", Link: "https://example.com/r2", Title: "r2"},
		{GUID: "r3", Link: "https://example.com/r3", Title: "r3"},
	}))

	count, err := repos.Article.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	articles, err := repos.Article.GetArticles(ctx, domain.ArticleFilter{FeedID: feed.ID})
	require.NoError(t, err)

	require.NoError(t, repos.Article.SetReadState(ctx, []int64{articles[0].ID, articles[1].ID}, true))

	count, err = repos.Article.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("mark unread again", func(t *testing.T) {
		require.NoError(t, repos.Article.SetReadState(ctx, []int64{articles[0].ID}, false))
		count, err := repos.Article.UnreadCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("empty ids no-op", func(t *testing.T) {
		require.NoError(t, repos.Article.SetReadState(ctx, nil, true))
	})
}
