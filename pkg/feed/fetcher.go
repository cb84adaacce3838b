package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . Resolver

// UserAgent identifies the service to upstream feed servers
const UserAgent = "GroupFeeder/1.0"

// acceptHeader lists the content types we are willing to receive
const acceptHeader = "application/xml, text/xml, application/rss+xml, application/atom+xml, application/feed+json, application/json"

// FeedStore persists feed cache validators and fetch timestamps
type FeedStore interface {
	UpdateFeedFetched(ctx context.Context, feedID int64, fetchedAt time.Time, etag, lastModified string) error
}

// ArticleStore persists accepted articles. The insert must tolerate
// duplicate-key conflicts from concurrent fetch cycles and silently drop the
// conflicting rows.
type ArticleStore interface {
	CreateArticles(ctx context.Context, feedID int64, candidates []domain.Candidate) error
}

// Resolver filters candidate items down to the genuinely new ones
type Resolver interface {
	Resolve(ctx context.Context, feedID int64, candidates []domain.Candidate) ([]domain.Candidate, error)
}

// Fetcher owns the network exchange for one feed: conditional GET, status
// branching, parsing, normalization, dedup resolution, and committing new
// articles plus updated cache validators.
type Fetcher struct {
	client     *http.Client
	parser     *Parser
	normalizer *Normalizer
	resolver   Resolver
	feeds      FeedStore
	articles   ArticleStore
	userAgent  string
}

// FetcherConfig holds dependencies and options for a Fetcher
type FetcherConfig struct {
	Client    *http.Client
	Resolver  Resolver
	Feeds     FeedStore
	Articles  ArticleStore
	UserAgent string
}

// NewFetcher creates a fetcher with the provided configuration
func NewFetcher(cfg FetcherConfig) *Fetcher {
	client := cfg.Client
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &Fetcher{
		client:     client,
		parser:     NewParser(),
		normalizer: NewNormalizer(),
		resolver:   cfg.Resolver,
		feeds:      cfg.Feeds,
		articles:   cfg.Articles,
		userAgent:  userAgent,
	}
}

// Fetch runs one fetch cycle for the feed. On success (including 304) the
// feed's cache validators and fetch timestamp are updated; on any error the
// feed metadata is deliberately left stale so the feed is retried on the next
// due cycle. Classified failures are returned as *domain.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, fd *domain.Feed) (*domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fd.URL, http.NoBody)
	if err != nil {
		return nil, &domain.FetchError{Code: domain.ErrNetwork, Msg: fmt.Sprintf("create request for %s", fd.URL), Cause: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)
	if fd.ETag != "" {
		req.Header.Set("If-None-Match", fd.ETag)
	}
	if fd.LastModified != "" {
		req.Header.Set("If-Modified-Since", fd.LastModified)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Code: domain.ErrNetwork, Msg: fmt.Sprintf("fetch feed %s", fd.URL), Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	fetchedAt := time.Now()
	etag := resp.Header.Get("ETag")
	lastModified := resp.Header.Get("Last-Modified")

	// a server may rotate validators even on a 304
	if resp.StatusCode == http.StatusNotModified {
		if err := f.feeds.UpdateFeedFetched(ctx, fd.ID, fetchedAt, etag, lastModified); err != nil {
			return nil, fmt.Errorf("update feed %d after 304: %w", fd.ID, err)
		}
		return &domain.FetchResult{FeedID: fd.ID, Status: resp.StatusCode, FetchedAt: fetchedAt}, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.FetchError{
			Code:   domain.ErrHTTP,
			Status: resp.StatusCode,
			Msg:    fmt.Sprintf("feed %s responded with status %d", fd.URL, resp.StatusCode),
		}
	}

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{Code: domain.ErrNetwork, Msg: "read feed response body", Cause: err}
	}

	doc, err := f.parser.Parse(resp.Header.Get("Content-Type"), string(rawBody))
	if err != nil {
		return nil, &domain.FetchError{Code: domain.ErrParse, Msg: fmt.Sprintf("parse feed %s content", fd.URL), Cause: err}
	}

	candidates := f.normalizer.Normalize(doc, fd.URL)
	if len(candidates) == 0 {
		if err := f.feeds.UpdateFeedFetched(ctx, fd.ID, fetchedAt, etag, lastModified); err != nil {
			return nil, fmt.Errorf("update feed %d: %w", fd.ID, err)
		}
		return &domain.FetchResult{FeedID: fd.ID, Status: resp.StatusCode, FetchedAt: fetchedAt}, nil
	}

	fresh, err := f.resolver.Resolve(ctx, fd.ID, candidates)
	if err != nil {
		return nil, fmt.Errorf("resolve duplicates for feed %d: %w", fd.ID, err)
	}

	if len(fresh) > 0 {
		if err := f.articles.CreateArticles(ctx, fd.ID, fresh); err != nil {
			return nil, fmt.Errorf("create articles for feed %d: %w", fd.ID, err)
		}
	}

	if err := f.feeds.UpdateFeedFetched(ctx, fd.ID, fetchedAt, etag, lastModified); err != nil {
		return nil, fmt.Errorf("update feed %d: %w", fd.ID, err)
	}

	lgr.Printf("[DEBUG] fetched feed %s: %d candidates, %d new", fd.URL, len(candidates), len(fresh))

	return &domain.FetchResult{
		FeedID:          fd.ID,
		Status:          resp.StatusCode,
		Updated:         len(fresh) > 0,
		FetchedAt:       fetchedAt,
		ArticlesCreated: len(fresh),
		ArticlesSkipped: len(candidates) - len(fresh),
	}, nil
}

// Preview fetches and parses a feed URL without touching any store, returning
// the feed-level title and description. Used when registering a new feed.
func (f *Fetcher) Preview(ctx context.Context, feedURL string) (title, description string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return "", "", &domain.FetchError{Code: domain.ErrNetwork, Msg: fmt.Sprintf("create request for %s", feedURL), Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", &domain.FetchError{Code: domain.ErrNetwork, Msg: fmt.Sprintf("fetch feed %s", feedURL), Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", "", &domain.FetchError{
			Code:   domain.ErrHTTP,
			Status: resp.StatusCode,
			Msg:    fmt.Sprintf("feed %s responded with status %d", feedURL, resp.StatusCode),
		}
	}

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", &domain.FetchError{Code: domain.ErrNetwork, Msg: "read feed response body", Cause: err}
	}

	doc, err := f.parser.Parse(resp.Header.Get("Content-Type"), string(rawBody))
	if err != nil {
		return "", "", &domain.FetchError{Code: domain.ErrParse, Msg: fmt.Sprintf("parse feed %s content", feedURL), Cause: err}
	}

	return doc.Title(), doc.Description(), nil
}
