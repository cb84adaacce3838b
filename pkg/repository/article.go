package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations. guid and content_hash
// are pointers so absent values stay NULL and the unique indexes ignore them.
type articleSQL struct {
	ID          int64      `db:"id"`
	FeedID      int64      `db:"feed_id"`
	GUID        *string    `db:"guid"`
	Link        string     `db:"link"`
	ContentHash *string    `db:"content_hash"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Content     string     `db:"content"`
	Author      string     `db:"author"`
	Published   *time.Time `db:"published"`
	IsRead      bool       `db:"is_read"`
	CreatedAt   time.Time  `db:"created_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticles batch-inserts accepted candidates for a feed. Duplicate-key
// conflicts from concurrent fetch cycles racing on the same GUID or link are
// silently dropped via INSERT OR IGNORE.
func (r *ArticleRepository) CreateArticles(ctx context.Context, feedID int64, candidates []domain.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin insert tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		query := `
			INSERT OR IGNORE INTO articles (
				feed_id, guid, link, content_hash, title, description,
				content, author, published
			) VALUES (
				:feed_id, :guid, :link, :content_hash, :title, :description,
				:content, :author, :published
			)
		`
		for _, c := range candidates {
			sqlArticle := &articleSQL{
				FeedID:      feedID,
				GUID:        nullIfEmpty(c.GUID),
				Link:        c.Link,
				ContentHash: nullIfEmpty(c.ContentHash),
				Title:       c.Title,
				Description: c.Description,
				Content:     c.Content,
				Author:      c.Author,
				Published:   c.Published,
			}
			if _, err := tx.NamedExecContext(ctx, query, sqlArticle); err != nil {
				if isLockError(err) {
					return err // retry the whole batch
				}
				return &criticalError{err: fmt.Errorf("insert article %s: %w", c.Link, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit articles: %w", err)}
		}
		return nil
	})
}

// FindGUIDs returns the subset of guids already present, across all feeds
func (r *ArticleRepository) FindGUIDs(ctx context.Context, guids []string) ([]string, error) {
	return r.findValues(ctx, "SELECT guid FROM articles WHERE guid IN (?)", guids)
}

// FindLinks returns the subset of links already present, across all feeds
func (r *ArticleRepository) FindLinks(ctx context.Context, links []string) ([]string, error) {
	return r.findValues(ctx, "SELECT link FROM articles WHERE link IN (?)", links)
}

// FindContentHashes returns the subset of content hashes already present
// within one feed. Fingerprints are not globally unique, so the check is
// deliberately scoped to the owning feed.
func (r *ArticleRepository) FindContentHashes(ctx context.Context, feedID int64, hashes []string) ([]string, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT content_hash FROM articles WHERE feed_id = ? AND content_hash IN (?)", feedID, hashes)
	if err != nil {
		return nil, fmt.Errorf("build content hash query: %w", err)
	}

	var found []string
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find content hashes: %w", err)
	}
	return found, nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// GetArticles retrieves articles newest-first with optional filters
func (r *ArticleRepository) GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	query := "SELECT a.* FROM articles a"
	var where []string
	var args []interface{}

	if filter.GroupID != 0 {
		query += " JOIN group_feeds gf ON gf.feed_id = a.feed_id"
		where = append(where, "gf.group_id = ?")
		args = append(args, filter.GroupID)
	}
	if filter.FeedID != 0 {
		where = append(where, "a.feed_id = ?")
		args = append(args, filter.FeedID)
	}
	if filter.UnreadOnly {
		where = append(where, "a.is_read = 0")
	}

	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
			continue
		}
		query += " AND " + cond
	}

	query += " ORDER BY a.published DESC, a.id DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = *r.toDomainArticle(&a)
	}
	return articles, nil
}

// SetReadState marks the given articles read or unread
func (r *ArticleRepository) SetReadState(ctx context.Context, ids []int64, read bool) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In("UPDATE articles SET is_read = ? WHERE id IN (?)", read, ids)
	if err != nil {
		return fmt.Errorf("build read state query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("set read state: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread articles
func (r *ArticleRepository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE is_read = 0"); err != nil {
		return 0, fmt.Errorf("count unread articles: %w", err)
	}
	return count, nil
}

// findValues runs one batched IN query returning matched string values
func (r *ArticleRepository) findValues(ctx context.Context, query string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	expanded, args, err := sqlx.In(query, values)
	if err != nil {
		return nil, fmt.Errorf("build lookup query: %w", err)
	}

	var found []string
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(expanded), args...); err != nil {
		return nil, fmt.Errorf("batched lookup: %w", err)
	}
	return found, nil
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(sqlArticle *articleSQL) *domain.Article {
	article := &domain.Article{
		ID:          sqlArticle.ID,
		FeedID:      sqlArticle.FeedID,
		Link:        sqlArticle.Link,
		Title:       sqlArticle.Title,
		Description: sqlArticle.Description,
		Content:     sqlArticle.Content,
		Author:      sqlArticle.Author,
		Published:   sqlArticle.Published,
		Read:        sqlArticle.IsRead,
		CreatedAt:   sqlArticle.CreatedAt,
	}
	if sqlArticle.GUID != nil {
		article.GUID = *sqlArticle.GUID
	}
	if sqlArticle.ContentHash != nil {
		article.ContentHash = *sqlArticle.ContentHash
	}
	return article
}

// nullIfEmpty maps empty strings to NULL for uniquely indexed columns
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
