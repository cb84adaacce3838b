package feed

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	gfjson "github.com/mmcdole/gofeed/json"
	"github.com/mmcdole/gofeed/rss"
)

// Format tags the syntax family of a parsed feed document
type Format string

// supported feed formats
const (
	FormatRSS  Format = "rss"
	FormatAtom Format = "atom"
	FormatRDF  Format = "rdf"
	FormatJSON Format = "json"
)

// Document is a format-tagged, structurally parsed feed. Exactly one of the
// typed fields is set. RDF (RSS 1.0) documents are parsed with the RSS parser
// and carry the RSS field with Format set to FormatRDF.
type Document struct {
	Format Format
	RSS    *rss.Feed
	Atom   *atom.Feed
	JSON   *gfjson.Feed
}

// Title returns the feed-level title, empty if the document has none
func (d *Document) Title() string {
	switch {
	case d.RSS != nil:
		return strings.TrimSpace(d.RSS.Title)
	case d.Atom != nil:
		return strings.TrimSpace(d.Atom.Title)
	case d.JSON != nil:
		return strings.TrimSpace(d.JSON.Title)
	}
	return ""
}

// Description returns the feed-level description or subtitle
func (d *Document) Description() string {
	switch {
	case d.RSS != nil:
		return strings.TrimSpace(d.RSS.Description)
	case d.Atom != nil:
		return strings.TrimSpace(d.Atom.Subtitle)
	case d.JSON != nil:
		return strings.TrimSpace(d.JSON.Description)
	}
	return ""
}

// Parser detects the syntax of a raw feed payload and parses it into a
// format-tagged document using gofeed's typed parsers
type Parser struct{}

// NewParser creates a feed parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw feed content. contentType is the declared HTTP
// content-type; the body is treated as a JSON Feed when the declared type
// mentions json or the first non-whitespace byte starts a JSON value.
func (p *Parser) Parse(contentType, body string) (*Document, error) {
	if looksLikeJSON(contentType, body) {
		parsed, err := (&gfjson.Parser{}).Parse(strings.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse json feed: %w", err)
		}
		return &Document{Format: FormatJSON, JSON: parsed}, nil
	}

	switch gofeed.DetectFeedType(strings.NewReader(body)) {
	case gofeed.FeedTypeAtom:
		parsed, err := (&atom.Parser{}).Parse(strings.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse atom feed: %w", err)
		}
		return &Document{Format: FormatAtom, Atom: parsed}, nil
	case gofeed.FeedTypeRSS:
		parsed, err := (&rss.Parser{}).Parse(strings.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse rss feed: %w", err)
		}
		format := FormatRSS
		if isRDF(body) {
			format = FormatRDF
		}
		return &Document{Format: format, RSS: parsed}, nil
	case gofeed.FeedTypeJSON:
		parsed, err := (&gfjson.Parser{}).Parse(strings.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("parse json feed: %w", err)
		}
		return &Document{Format: FormatJSON, JSON: parsed}, nil
	default:
		return nil, fmt.Errorf("unrecognized feed format")
	}
}

// looksLikeJSON reports whether the payload should be parsed as a JSON Feed
func looksLikeJSON(contentType, body string) bool {
	if strings.Contains(strings.ToLower(contentType), "json") {
		return true
	}
	trimmed := strings.TrimLeftFunc(body, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// isRDF reports whether an RSS-family document is actually RSS 1.0 (RDF)
func isRDF(body string) bool {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	return strings.Contains(strings.ToLower(head), "<rdf:rdf")
}
