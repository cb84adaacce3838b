package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser()

	t.Run("rss 2.0", func(t *testing.T) {
		body := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>Test Feed</title>
		<description>A test feed</description>
		<item>
			<title>First</title>
			<link>https://example.com/first</link>
		</item>
	</channel>
</rss>`

		doc, err := p.Parse("application/rss+xml", body)
		require.NoError(t, err)
		assert.Equal(t, FormatRSS, doc.Format)
		require.NotNil(t, doc.RSS)
		assert.Equal(t, "Test Feed", doc.Title())
		assert.Equal(t, "A test feed", doc.Description())
		assert.Len(t, doc.RSS.Items, 1)
	})

	t.Run("atom", func(t *testing.T) {
		body := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom Feed</title>
	<subtitle>An atom feed</subtitle>
	<entry>
		<title>Entry</title>
		<id>urn:uuid:1</id>
		<link href="https://example.com/entry"/>
	</entry>
</feed>`

		doc, err := p.Parse("application/atom+xml", body)
		require.NoError(t, err)
		assert.Equal(t, FormatAtom, doc.Format)
		require.NotNil(t, doc.Atom)
		assert.Equal(t, "Atom Feed", doc.Title())
		assert.Equal(t, "An atom feed", doc.Description())
		assert.Len(t, doc.Atom.Entries, 1)
	})

	t.Run("rdf parsed as rss family", func(t *testing.T) {
		body := `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/">
	<channel rdf:about="https://example.com/">
		<title>RDF Feed</title>
		<link>https://example.com/</link>
		<description>RSS 1.0 feed</description>
	</channel>
	<item rdf:about="https://example.com/one">
		<title>One</title>
		<link>https://example.com/one</link>
	</item>
</rdf:RDF>`

		doc, err := p.Parse("application/rdf+xml", body)
		require.NoError(t, err)
		assert.Equal(t, FormatRDF, doc.Format)
		require.NotNil(t, doc.RSS)
		assert.Equal(t, "RDF Feed", doc.Title())
		assert.Len(t, doc.RSS.Items, 1)
	})

	t.Run("json feed by content type", func(t *testing.T) {
		body := `{"version":"https://jsonfeed.org/version/1.1","title":"JSON Feed","description":"json","items":[{"id":"1","url":"https://example.com/1"}]}`

		doc, err := p.Parse("application/feed+json", body)
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, doc.Format)
		require.NotNil(t, doc.JSON)
		assert.Equal(t, "JSON Feed", doc.Title())
		assert.Len(t, doc.JSON.Items, 1)
	})

	t.Run("json feed sniffed from body", func(t *testing.T) {
		// some servers serve JSON Feed as text/plain, the leading brace decides
		body := "\n  {\"version\":\"https://jsonfeed.org/version/1.1\",\"title\":\"Sniffed\",\"items\":[]}"

		doc, err := p.Parse("text/plain", body)
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, doc.Format)
		assert.Equal(t, "Sniffed", doc.Title())
	})

	t.Run("malformed xml", func(t *testing.T) {
		_, err := p.Parse("application/rss+xml", "<rss><channel><title>broken")
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := p.Parse("application/json", "{not json")
		assert.Error(t, err)
	})

	t.Run("html page is not a feed", func(t *testing.T) {
		_, err := p.Parse("text/html", "<html><body>hello</body></html>")
		assert.Error(t, err)
	})
}

func TestLooksLikeJSON(t *testing.T) {
	assert.True(t, looksLikeJSON("application/json", ""))
	assert.True(t, looksLikeJSON("application/feed+json; charset=utf-8", ""))
	assert.True(t, looksLikeJSON("text/plain", `{"a":1}`))
	assert.True(t, looksLikeJSON("text/plain", "  \r\n\t["))
	assert.False(t, looksLikeJSON("application/xml", "<rss/>"))
	assert.False(t, looksLikeJSON("", "<feed/>"))
}
