package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID            int64      `db:"id"`
	URL           string     `db:"url"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	ETag          string     `db:"etag"`
	LastModified  string     `db:"last_modified"`
	LastFetchedAt *time.Time `db:"last_fetched_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	sqlFeed := &feedSQL{
		URL:         feed.URL,
		Title:       feed.Title,
		Description: feed.Description,
	}

	query := `
		INSERT INTO feeds (url, title, description)
		VALUES (:url, :title, :description)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// UpsertFeed creates a feed by URL or refreshes the title and description of
// an existing one. Returns the stored feed and whether it was newly created.
func (r *FeedRepository) UpsertFeed(ctx context.Context, url, title, description string) (*domain.Feed, bool, error) {
	existing, err := r.GetFeedByURL(ctx, url)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("lookup feed by url: %w", err)
	}

	if existing != nil {
		query := "UPDATE feeds SET title = ?, description = ? WHERE id = ?"
		if _, err := r.db.ExecContext(ctx, query, title, description, existing.ID); err != nil {
			return nil, false, fmt.Errorf("update feed meta: %w", err)
		}
		existing.Title = title
		existing.Description = description
		return existing, false, nil
	}

	feed := &domain.Feed{URL: url, Title: title, Description: description}
	if err := r.CreateFeed(ctx, feed); err != nil {
		return nil, false, err
	}
	return feed, true, nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// GetFeedByURL retrieves a feed by its source URL
func (r *FeedRepository) GetFeedByURL(ctx context.Context, url string) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE url = ?", url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("get feed by url: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// GetFeeds retrieves all feeds ordered by title
func (r *FeedRepository) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, "SELECT * FROM feeds ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = *r.toDomainFeed(&f)
	}
	return feeds, nil
}

// GetDueFeeds retrieves feeds never fetched or last fetched before olderThan,
// least-recently-fetched first
func (r *FeedRepository) GetDueFeeds(ctx context.Context, olderThan time.Time) ([]domain.Feed, error) {
	query := `
		SELECT * FROM feeds
		WHERE last_fetched_at IS NULL OR last_fetched_at < ?
		ORDER BY last_fetched_at ASC
	`
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, query, olderThan)
	if err != nil {
		return nil, fmt.Errorf("get due feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = *r.toDomainFeed(&f)
	}
	return feeds, nil
}

// UpdateFeedFetched updates the fetch timestamp and cache validators after a
// successful fetch or a 304
func (r *FeedRepository) UpdateFeedFetched(ctx context.Context, feedID int64, fetchedAt time.Time, etag, lastModified string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET last_fetched_at = ?,
			    etag = ?,
			    last_modified = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, fetchedAt, etag, lastModified, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed fetched: %w", err)}
		}
		return nil
	})
}

// DeleteFeed removes a feed and all its articles
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}

// toDomainFeed converts feedSQL to domain.Feed
func (r *FeedRepository) toDomainFeed(sqlFeed *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:            sqlFeed.ID,
		URL:           sqlFeed.URL,
		Title:         sqlFeed.Title,
		Description:   sqlFeed.Description,
		ETag:          sqlFeed.ETag,
		LastModified:  sqlFeed.LastModified,
		LastFetchedAt: sqlFeed.LastFetchedAt,
		CreatedAt:     sqlFeed.CreatedAt,
	}
}
