package feed

import (
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
	gfjson "github.com/mmcdole/gofeed/json"
	"github.com/mmcdole/gofeed/rss"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

// Normalizer converts format-tagged feed documents into a uniform sequence
// of candidate items. It performs no I/O; entries that yield neither a link
// nor a GUID are dropped because they cannot be deduplicated or displayed.
type Normalizer struct {
	fingerprint func(title, description, pubDate string) string
}

// NewNormalizer creates a normalizer using the default content fingerprint
func NewNormalizer() *Normalizer {
	return &Normalizer{fingerprint: ContentHash}
}

// Normalize produces candidate items in document order. feedURL is used as
// the base for resolving relative links and for synthesizing pseudo-links
// for link-less entries that carry a GUID.
func (n *Normalizer) Normalize(doc *Document, feedURL string) []domain.Candidate {
	switch doc.Format {
	case FormatRSS, FormatRDF:
		return n.normalizeRSS(doc.RSS, feedURL)
	case FormatAtom:
		return n.normalizeAtom(doc.Atom, feedURL)
	case FormatJSON:
		return n.normalizeJSON(doc.JSON, feedURL)
	}
	return nil
}

func (n *Normalizer) normalizeRSS(f *rss.Feed, feedURL string) []domain.Candidate {
	if f == nil {
		return nil
	}

	candidates := make([]domain.Candidate, 0, len(f.Items))
	for _, item := range f.Items {
		if item == nil {
			continue
		}

		guid := ""
		if item.GUID != nil {
			guid = strings.TrimSpace(item.GUID.Value)
		}

		link := resolveLink(item.Link, feedURL, guid)
		if link == "" {
			continue
		}

		author := strings.TrimSpace(item.Author)
		if author == "" && item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
			author = strings.TrimSpace(item.DublinCoreExt.Creator[0])
		}

		pubDateRaw := strings.TrimSpace(item.PubDate)
		if pubDateRaw == "" && item.DublinCoreExt != nil && len(item.DublinCoreExt.Date) > 0 {
			pubDateRaw = strings.TrimSpace(item.DublinCoreExt.Date[0])
		}
		if pubDateRaw == "" {
			pubDateRaw = extensionValue(item.Extensions, "dcterms", "created")
		}

		published := item.PubDateParsed
		if published == nil {
			published = parseDate(pubDateRaw)
		}

		candidates = append(candidates, n.finish(domain.Candidate{
			GUID:         guid,
			Link:         link,
			Title:        firstNonEmpty(strings.TrimSpace(item.Title), link),
			Description:  strings.TrimSpace(item.Description),
			Content:      extensionValue(item.Extensions, "content", "encoded"),
			Author:       author,
			Published:    published,
			PublishedRaw: pubDateRaw,
		}))
	}
	return candidates
}

func (n *Normalizer) normalizeAtom(f *atom.Feed, feedURL string) []domain.Candidate {
	if f == nil {
		return nil
	}

	candidates := make([]domain.Candidate, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if entry == nil {
			continue
		}

		guid := strings.TrimSpace(entry.ID)

		link := resolveLink(alternateLink(entry.Links), feedURL, guid)
		if link == "" {
			continue
		}

		content := ""
		if entry.Content != nil {
			content = strings.TrimSpace(entry.Content.Value)
		}

		author := ""
		for _, person := range entry.Authors {
			if person == nil {
				continue
			}
			if name := strings.TrimSpace(person.Name); name != "" {
				author = name
				break
			}
		}

		pubDateRaw := firstNonEmpty(strings.TrimSpace(entry.Published), strings.TrimSpace(entry.Updated))

		published := entry.PublishedParsed
		if published == nil {
			published = entry.UpdatedParsed
		}
		if published == nil {
			published = parseDate(pubDateRaw)
		}

		candidates = append(candidates, n.finish(domain.Candidate{
			GUID:         guid,
			Link:         link,
			Title:        firstNonEmpty(strings.TrimSpace(entry.Title), link),
			Description:  strings.TrimSpace(entry.Summary),
			Content:      content,
			Author:       author,
			Published:    published,
			PublishedRaw: pubDateRaw,
		}))
	}
	return candidates
}

func (n *Normalizer) normalizeJSON(f *gfjson.Feed, feedURL string) []domain.Candidate {
	if f == nil {
		return nil
	}

	candidates := make([]domain.Candidate, 0, len(f.Items))
	for _, item := range f.Items {
		if item == nil {
			continue
		}

		guid := strings.TrimSpace(item.ID)

		rawLink := firstNonEmpty(strings.TrimSpace(item.URL), strings.TrimSpace(item.ExternalURL))
		link := resolveLink(rawLink, feedURL, guid)
		if link == "" {
			continue
		}

		author := ""
		if item.Author != nil {
			author = strings.TrimSpace(item.Author.Name)
		}
		if author == "" {
			for _, a := range item.Authors {
				if a == nil {
					continue
				}
				if name := strings.TrimSpace(a.Name); name != "" {
					author = name
					break
				}
			}
		}

		pubDateRaw := firstNonEmpty(strings.TrimSpace(item.DatePublished), strings.TrimSpace(item.DateModified))

		candidates = append(candidates, n.finish(domain.Candidate{
			GUID:         guid,
			Link:         link,
			Title:        firstNonEmpty(strings.TrimSpace(item.Title), link),
			Description:  firstNonEmpty(strings.TrimSpace(item.Summary), strings.TrimSpace(item.ContentText)),
			Content:      firstNonEmpty(strings.TrimSpace(item.ContentHTML), strings.TrimSpace(item.ContentText)),
			Author:       author,
			Published:    parseDate(pubDateRaw),
			PublishedRaw: pubDateRaw,
		}))
	}
	return candidates
}

// finish computes the content fingerprint for GUID-less candidates. GUID is
// a strictly stronger identity signal, so the fingerprint is skipped when one
// is present; an empty fingerprint result is treated as absent.
func (n *Normalizer) finish(c domain.Candidate) domain.Candidate {
	if c.GUID == "" && n.fingerprint != nil {
		c.ContentHash = n.fingerprint(c.Title, c.Description, c.PublishedRaw)
	}
	return c
}

// resolveLink resolves a raw link against the feed URL, falling back to the
// raw string when resolution fails. Entries with no link but a GUID get a
// stable pseudo-link derived from the feed URL.
func resolveLink(link, feedURL, guid string) string {
	if trimmed := strings.TrimSpace(link); trimmed != "" {
		base, err := url.Parse(feedURL)
		if err == nil {
			if ref, refErr := url.Parse(trimmed); refErr == nil {
				return base.ResolveReference(ref).String()
			}
		}
		return trimmed
	}

	if guid != "" {
		base := feedURL
		if i := strings.Index(base, "#"); i >= 0 {
			base = base[:i]
		}
		return base + "#guid=" + url.QueryEscape(guid)
	}

	return ""
}

// alternateLink picks the rel="alternate" entry from an Atom links list,
// falling back to the first link with any href
func alternateLink(links []*atom.Link) string {
	for _, l := range links {
		if l != nil && l.Rel == "alternate" && strings.TrimSpace(l.Href) != "" {
			return l.Href
		}
	}
	for _, l := range links {
		if l != nil && strings.TrimSpace(l.Href) != "" {
			return l.Href
		}
	}
	return ""
}

// extensionValue reads the first value for a namespaced element, e.g.
// content:encoded or dcterms:created
func extensionValue(exts ext.Extensions, namespace, name string) string {
	if exts == nil {
		return ""
	}
	values, ok := exts[namespace]
	if !ok {
		return ""
	}
	for _, e := range values[name] {
		if v := strings.TrimSpace(e.Value); v != "" {
			return v
		}
	}
	return ""
}

// parseDate parses a publish date permissively; unparseable values yield nil
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
