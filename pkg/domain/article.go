package domain

import "time"

// Article is a persisted, deduplicated feed entry. Articles are immutable
// after creation except for the read flag.
type Article struct {
	ID          int64      `json:"id"`
	FeedID      int64      `json:"feedId"`
	GUID        string     `json:"guid,omitempty"`
	Link        string     `json:"link"`
	ContentHash string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content,omitempty"`
	Author      string     `json:"author,omitempty"`
	Published   *time.Time `json:"published,omitempty"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ArticleFilter narrows article listings
type ArticleFilter struct {
	FeedID     int64
	GroupID    int64
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Candidate is a normalized, not-yet-deduplicated feed entry. It exists only
// within one fetch cycle. PublishedRaw keeps the original date string because
// the content fingerprint is computed over it, not over the parsed time.
type Candidate struct {
	GUID         string
	Link         string
	Title        string
	Description  string
	Content      string
	Author       string
	Published    *time.Time
	PublishedRaw string
	ContentHash  string
}
