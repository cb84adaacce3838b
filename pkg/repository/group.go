package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

// GroupRepository handles group-related database operations
type GroupRepository struct {
	db *sqlx.DB
}

// groupSQL represents a group for SQL operations
type groupSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(database *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: database}
}

// CreateGroup inserts a new group
func (r *GroupRepository) CreateGroup(ctx context.Context, group *domain.Group) error {
	result, err := r.db.ExecContext(ctx, "INSERT INTO groups (name) VALUES (?)", group.Name)
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	group.ID = id
	return nil
}

// GetGroups retrieves all groups ordered by name
func (r *GroupRepository) GetGroups(ctx context.Context) ([]domain.Group, error) {
	var sqlGroups []groupSQL
	if err := r.db.SelectContext(ctx, &sqlGroups, "SELECT * FROM groups ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get groups: %w", err)
	}

	groups := make([]domain.Group, len(sqlGroups))
	for i, g := range sqlGroups {
		groups[i] = domain.Group{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
	}
	return groups, nil
}

// RenameGroup updates a group's name
func (r *GroupRepository) RenameGroup(ctx context.Context, id int64, name string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE groups SET name = ? WHERE id = ?", name, id); err != nil {
		return fmt.Errorf("rename group: %w", err)
	}
	return nil
}

// DeleteGroup removes a group; its feed associations cascade
func (r *GroupRepository) DeleteGroup(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// AddFeeds associates feeds with a group, ignoring already-present pairs
func (r *GroupRepository) AddFeeds(ctx context.Context, groupID int64, feedIDs []int64) error {
	if len(feedIDs) == 0 {
		return nil
	}

	for _, feedID := range feedIDs {
		_, err := r.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO group_feeds (group_id, feed_id) VALUES (?, ?)", groupID, feedID)
		if err != nil {
			return fmt.Errorf("add feed %d to group %d: %w", feedID, groupID, err)
		}
	}
	return nil
}

// RemoveFeed detaches a feed from a group
func (r *GroupRepository) RemoveFeed(ctx context.Context, groupID, feedID int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM group_feeds WHERE group_id = ? AND feed_id = ?", groupID, feedID)
	if err != nil {
		return fmt.Errorf("remove feed %d from group %d: %w", feedID, groupID, err)
	}
	return nil
}

// GetGroupFeeds retrieves the feeds attached to a group
func (r *GroupRepository) GetGroupFeeds(ctx context.Context, groupID int64) ([]domain.Feed, error) {
	query := `
		SELECT f.* FROM feeds f
		JOIN group_feeds gf ON gf.feed_id = f.id
		WHERE gf.group_id = ?
		ORDER BY f.title
	`
	var sqlFeeds []feedSQL
	if err := r.db.SelectContext(ctx, &sqlFeeds, query, groupID); err != nil {
		return nil, fmt.Errorf("get group feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = domain.Feed{
			ID:            f.ID,
			URL:           f.URL,
			Title:         f.Title,
			Description:   f.Description,
			ETag:          f.ETag,
			LastModified:  f.LastModified,
			LastFetchedAt: f.LastFetchedAt,
			CreatedAt:     f.CreatedAt,
		}
	}
	return feeds, nil
}
