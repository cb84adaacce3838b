package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
	"github.com/keisuke-yamauch1/group-feeder/pkg/feed/mocks"
)

const fetcherTestRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>Test Feed</title>
		<item>
			<title>Article 1</title>
			<link>https://example.com/1</link>
			<guid>g1</guid>
		</item>
		<item>
			<title>Article 2</title>
			<link>https://example.com/2</link>
			<guid>g2</guid>
		</item>
	</channel>
</rss>`

func newTestStores() (*mocks.FeedStoreMock, *mocks.ArticleStoreMock, *mocks.ResolverMock) {
	feeds := &mocks.FeedStoreMock{
		UpdateFeedFetchedFunc: func(ctx context.Context, feedID int64, fetchedAt time.Time, etag, lastModified string) error {
			return nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		CreateArticlesFunc: func(ctx context.Context, feedID int64, candidates []domain.Candidate) error {
			return nil
		},
	}
	resolver := &mocks.ResolverMock{
		ResolveFunc: func(ctx context.Context, feedID int64, candidates []domain.Candidate) ([]domain.Candidate, error) {
			return candidates, nil
		},
	}
	return feeds, articles, resolver
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("new articles stored and feed updated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Header().Set("ETag", `"v2"`)
			w.Header().Set("Last-Modified", "Wed, 21 Oct 2015 07:28:00 GMT")
			w.Write([]byte(fetcherTestRSS)) //nolint:errcheck
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		res, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.True(t, res.Updated)
		assert.Equal(t, 2, res.ArticlesCreated)
		assert.Equal(t, 0, res.ArticlesSkipped)

		require.Len(t, articles.CreateArticlesCalls(), 1)
		assert.Len(t, articles.CreateArticlesCalls()[0].Candidates, 2)

		updates := feeds.UpdateFeedFetchedCalls()
		require.Len(t, updates, 1)
		assert.Equal(t, `"v2"`, updates[0].Etag)
		assert.Equal(t, "Wed, 21 Oct 2015 07:28:00 GMT", updates[0].LastModified)
	})

	t.Run("conditional headers sent from stored validators", func(t *testing.T) {
		var gotETag, gotModified string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotETag = r.Header.Get("If-None-Match")
			gotModified = r.Header.Get("If-Modified-Since")
			w.WriteHeader(http.StatusNotModified)
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		fd := &domain.Feed{ID: 1, URL: srv.URL, ETag: `"v1"`, LastModified: "Tue, 20 Oct 2015 07:28:00 GMT"}
		_, err := f.Fetch(context.Background(), fd)
		require.NoError(t, err)
		assert.Equal(t, `"v1"`, gotETag)
		assert.Equal(t, "Tue, 20 Oct 2015 07:28:00 GMT", gotModified)
	})

	t.Run("304 updates validators without articles", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("ETag", `"rotated"`)
			w.WriteHeader(http.StatusNotModified)
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		res, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL, ETag: `"v1"`})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotModified, res.Status)
		assert.False(t, res.Updated)
		assert.Zero(t, res.ArticlesCreated)

		assert.Empty(t, articles.CreateArticlesCalls())
		assert.Empty(t, resolver.ResolveCalls())

		updates := feeds.UpdateFeedFetchedCalls()
		require.Len(t, updates, 1)
		assert.Equal(t, `"rotated"`, updates[0].Etag)
	})

	t.Run("http error leaves feed untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		_, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.Error(t, err)

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, domain.ErrHTTP, fetchErr.Code)
		assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)

		assert.Empty(t, feeds.UpdateFeedFetchedCalls(), "failed fetch must not advance the feed")
		assert.Empty(t, articles.CreateArticlesCalls())
	})

	t.Run("network error classified", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		_, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.Error(t, err)

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, domain.ErrNetwork, fetchErr.Code)
		assert.Empty(t, feeds.UpdateFeedFetchedCalls())
	})

	t.Run("parse error classified", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte("<html>not a feed</html>")) //nolint:errcheck
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		_, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.Error(t, err)

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, domain.ErrParse, fetchErr.Code)
		assert.Empty(t, feeds.UpdateFeedFetchedCalls())
	})

	t.Run("empty feed still updates metadata", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(`<rss version="2.0"><channel><title>empty</title></channel></rss>`)) //nolint:errcheck
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		res, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.NoError(t, err)
		assert.False(t, res.Updated)
		assert.Empty(t, resolver.ResolveCalls())
		assert.Len(t, feeds.UpdateFeedFetchedCalls(), 1)
	})

	t.Run("all duplicates counted as skipped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(fetcherTestRSS)) //nolint:errcheck
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		resolver.ResolveFunc = func(ctx context.Context, feedID int64, candidates []domain.Candidate) ([]domain.Candidate, error) {
			return nil, nil
		}
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		res, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.NoError(t, err)
		assert.False(t, res.Updated)
		assert.Equal(t, 0, res.ArticlesCreated)
		assert.Equal(t, 2, res.ArticlesSkipped)
		assert.Empty(t, articles.CreateArticlesCalls())
		assert.Len(t, feeds.UpdateFeedFetchedCalls(), 1)
	})

	t.Run("store failure is not a classified fetch error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(fetcherTestRSS)) //nolint:errcheck
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		articles.CreateArticlesFunc = func(ctx context.Context, feedID int64, candidates []domain.Candidate) error {
			return errors.New("disk full")
		}
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		_, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.Error(t, err)

		var fetchErr *domain.FetchError
		assert.False(t, errors.As(err, &fetchErr))
		assert.Empty(t, feeds.UpdateFeedFetchedCalls())
	})

	t.Run("custom user agent", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusNotModified)
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles, UserAgent: "custom-agent/2.0"})

		_, err := f.Fetch(context.Background(), &domain.Feed{ID: 1, URL: srv.URL})
		require.NoError(t, err)
		assert.Equal(t, "custom-agent/2.0", gotUA)
	})
}

func TestFetcher_Preview(t *testing.T) {
	t.Run("returns feed metadata", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(`<rss version="2.0"><channel><title>Preview Feed</title><description>About it</description></channel></rss>`)) //nolint:errcheck
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		title, description, err := f.Preview(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Preview Feed", title)
		assert.Equal(t, "About it", description)
	})

	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		feeds, articles, resolver := newTestStores()
		f := NewFetcher(FetcherConfig{Resolver: resolver, Feeds: feeds, Articles: articles})

		_, _, err := f.Preview(context.Background(), srv.URL)
		require.Error(t, err)

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, domain.ErrHTTP, fetchErr.Code)
		assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	})
}
