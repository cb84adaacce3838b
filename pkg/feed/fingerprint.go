package feed

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLen is the number of hex characters kept from the digest, short
// enough to index cheaply while keeping accidental collisions within one feed
// negligible
const fingerprintLen = 16

// ContentHash returns a deterministic fingerprint over an item's title,
// description and raw publish-date string. It serves as a fallback identity
// for items that carry no GUID.
func ContentHash(title, description, pubDate string) string {
	sum := sha256.Sum256([]byte(title + "|" + description + "|" + pubDate))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
