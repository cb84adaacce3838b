package feed

import (
	"context"
	"fmt"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

//go:generate moq -out mocks/article_finder.go -pkg mocks -skip-ensure -fmt goimports . ArticleFinder

// ArticleFinder provides batched lookups over persisted articles. Each call
// returns the subset of the given values that already exist in the store.
// GUID and link lookups are global across all feeds; content-hash lookups are
// scoped to one feed because the fingerprint is not globally unique.
type ArticleFinder interface {
	FindGUIDs(ctx context.Context, guids []string) ([]string, error)
	FindLinks(ctx context.Context, links []string) ([]string, error)
	FindContentHashes(ctx context.Context, feedID int64, hashes []string) ([]string, error)
}

// Deduper decides which candidate items are genuinely new. Identity is
// resolved with ordered precedence: GUID supersedes link, link supersedes
// content fingerprint.
type Deduper struct {
	finder ArticleFinder
}

// NewDeduper creates a deduper backed by the given article lookups
func NewDeduper(finder ArticleFinder) *Deduper {
	return &Deduper{finder: finder}
}

// Resolve returns the subsequence of candidates judged new, in the original
// order. Candidates that collide with each other within the batch are also
// deduplicated; the first occurrence wins.
func (d *Deduper) Resolve(ctx context.Context, feedID int64, candidates []domain.Candidate) ([]domain.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	var guids, links, hashes []string
	for _, c := range candidates {
		if c.GUID != "" {
			guids = append(guids, c.GUID)
		}
		links = append(links, c.Link)
		if c.GUID == "" && c.ContentHash != "" {
			hashes = append(hashes, c.ContentHash)
		}
	}

	seenGUIDs, err := d.lookupSet(ctx, guids, func(ctx context.Context, vals []string) ([]string, error) {
		return d.finder.FindGUIDs(ctx, vals)
	})
	if err != nil {
		return nil, fmt.Errorf("lookup existing guids: %w", err)
	}

	seenLinks, err := d.lookupSet(ctx, links, func(ctx context.Context, vals []string) ([]string, error) {
		return d.finder.FindLinks(ctx, vals)
	})
	if err != nil {
		return nil, fmt.Errorf("lookup existing links: %w", err)
	}

	seenHashes, err := d.lookupSet(ctx, hashes, func(ctx context.Context, vals []string) ([]string, error) {
		return d.finder.FindContentHashes(ctx, feedID, vals)
	})
	if err != nil {
		return nil, fmt.Errorf("lookup existing content hashes: %w", err)
	}

	var fresh []domain.Candidate
	for _, c := range candidates {
		hasGUID := c.GUID != ""

		if hasGUID && seenGUIDs[c.GUID] {
			continue
		}
		if seenLinks[c.Link] {
			continue
		}
		if !hasGUID && c.ContentHash != "" && seenHashes[c.ContentHash] {
			continue
		}

		fresh = append(fresh, c)

		// register identities so later in-batch duplicates are skipped too
		if hasGUID {
			seenGUIDs[c.GUID] = true
		}
		seenLinks[c.Link] = true
		if !hasGUID && c.ContentHash != "" {
			seenHashes[c.ContentHash] = true
		}
	}

	return fresh, nil
}

// lookupSet runs one batched existence query and returns the result as a set
func (d *Deduper) lookupSet(ctx context.Context, values []string,
	find func(ctx context.Context, vals []string) ([]string, error)) (map[string]bool, error) {

	set := make(map[string]bool)
	if len(values) == 0 {
		return set, nil
	}

	unique := make([]string, 0, len(values))
	for _, v := range values {
		if !set[v] {
			set[v] = true
			unique = append(unique, v)
		}
	}
	// reuse the map for results
	clear(set)

	existing, err := find(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, v := range existing {
		set[v] = true
	}
	return set, nil
}
