package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		h1 := ContentHash("Title", "Description", "Mon, 02 Jan 2006 15:04:05 -0700")
		h2 := ContentHash("Title", "Description", "Mon, 02 Jan 2006 15:04:05 -0700")
		assert.Equal(t, h1, h2)
		assert.Len(t, h1, 16)
	})

	t.Run("sensitive to each part", func(t *testing.T) {
		base := ContentHash("Title", "Description", "date")
		assert.NotEqual(t, base, ContentHash("Title2", "Description", "date"))
		assert.NotEqual(t, base, ContentHash("Title", "Description2", "date"))
		assert.NotEqual(t, base, ContentHash("Title", "Description", "date2"))
	})

	t.Run("empty parts still hash", func(t *testing.T) {
		h := ContentHash("", "", "")
		assert.Len(t, h, 16)
		assert.NotEqual(t, h, ContentHash("a", "", ""))
	})

	t.Run("separator prevents field bleeding", func(t *testing.T) {
		// "ab"+"c" must not collide with "a"+"bc"
		assert.NotEqual(t, ContentHash("ab", "c", ""), ContentHash("a", "bc", ""))
	})
}
