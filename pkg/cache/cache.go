// Package cache provides pluggable byte caches for rendered diagram
// artifacts. The CLI uses a file-based cache under the user's cache
// directory; the API server can point at Redis so several instances
// share one artifact store. NullCache disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact from the
// circuit hash, the output format, and the style hash. Any change to
// circuit, format, or style yields a different key.
func ArtifactKey(circuitHash, format, styleHash string) string {
	return hashKey("artifact", circuitHash, format, styleHash)
}
