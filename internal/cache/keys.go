package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	GlobalKeyPrefix = "wikiquiz"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}

// ContentKey returns the cache key for extracted article content. The URL
// is hashed so arbitrary characters never leak into the key space.
func ContentKey(articleURL string) string {
	sum := sha256.Sum256([]byte(articleURL))
	return GenerateCacheKey("extractor", "content", hex.EncodeToString(sum[:]))
}
