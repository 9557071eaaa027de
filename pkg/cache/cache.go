// Package cache provides a small result cache for rendered layouts.
//
// Rendering a layout diagram through Graphviz is the slowest step of the
// CLI, so rendered artifacts are cached keyed by a hash of their DOT
// source. Two implementations exist:
//   - [FileCache]: directory-backed storage for CLI usage
//   - [NullCache]: a no-op cache for tests and --no-cache runs
//
// Cache operations report hits, misses, and writes through the
// observability hooks so hosts can instrument them.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
