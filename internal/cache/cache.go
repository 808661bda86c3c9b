// Package cache caches corpus search reports keyed by the normalized
// query and active filters. The corpus itself is never cached; keys
// carry no corpus content, so a corpus edit warrants a Clear.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the byte-level caching interface
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// SearchKey derives a stable cache key from a search query and its
// filters. The query is lowercased and space-normalized first so that
// trivially different spellings share an entry.
func SearchKey(query, jurisdiction, remedyType string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	raw := norm + "|" + strings.ToLower(jurisdiction) + "|" + strings.ToLower(remedyType)
	hash := sha256.Sum256([]byte(raw))
	return "verobrix:v1:" + hex.EncodeToString(hash[:])
}
