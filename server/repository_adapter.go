package server

import (
	"context"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
	"github.com/keisuke-yamauch1/group-feeder/pkg/repository"
)

// RepositoryAdapter adapts repositories to the server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetFeeds returns all feeds
func (r *RepositoryAdapter) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	return r.repos.Feed.GetFeeds(ctx)
}

// UpsertFeed creates a feed or returns the existing one for the URL
func (r *RepositoryAdapter) UpsertFeed(ctx context.Context, url, title, description string) (*domain.Feed, bool, error) {
	return r.repos.Feed.UpsertFeed(ctx, url, title, description)
}

// DeleteFeed removes a feed and its articles
func (r *RepositoryAdapter) DeleteFeed(ctx context.Context, id int64) error {
	return r.repos.Feed.DeleteFeed(ctx, id)
}

// GetArticles returns articles matching the filter
func (r *RepositoryAdapter) GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return r.repos.Article.GetArticles(ctx, filter)
}

// SetReadState marks a batch of articles read or unread
func (r *RepositoryAdapter) SetReadState(ctx context.Context, articleIDs []int64, read bool) error {
	return r.repos.Article.SetReadState(ctx, articleIDs, read)
}

// UnreadCount returns the total number of unread articles
func (r *RepositoryAdapter) UnreadCount(ctx context.Context) (int, error) {
	return r.repos.Article.UnreadCount(ctx)
}

// CreateGroup inserts a new group
func (r *RepositoryAdapter) CreateGroup(ctx context.Context, group *domain.Group) error {
	return r.repos.Group.CreateGroup(ctx, group)
}

// GetGroups returns all groups
func (r *RepositoryAdapter) GetGroups(ctx context.Context) ([]domain.Group, error) {
	return r.repos.Group.GetGroups(ctx)
}

// RenameGroup updates a group's name
func (r *RepositoryAdapter) RenameGroup(ctx context.Context, id int64, name string) error {
	return r.repos.Group.RenameGroup(ctx, id, name)
}

// DeleteGroup removes a group
func (r *RepositoryAdapter) DeleteGroup(ctx context.Context, id int64) error {
	return r.repos.Group.DeleteGroup(ctx, id)
}

// AddFeedsToGroup attaches feeds to a group
func (r *RepositoryAdapter) AddFeedsToGroup(ctx context.Context, groupID int64, feedIDs []int64) error {
	return r.repos.Group.AddFeeds(ctx, groupID, feedIDs)
}

// RemoveFeedFromGroup detaches a feed from a group
func (r *RepositoryAdapter) RemoveFeedFromGroup(ctx context.Context, groupID, feedID int64) error {
	return r.repos.Group.RemoveFeed(ctx, groupID, feedID)
}

// GetGroupFeeds returns the feeds attached to a group
func (r *RepositoryAdapter) GetGroupFeeds(ctx context.Context, groupID int64) ([]domain.Feed, error) {
	return r.repos.Group.GetGroupFeeds(ctx, groupID)
}
