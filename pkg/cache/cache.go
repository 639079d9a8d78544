// Package cache stores rendered artifacts keyed by graph content and render
// options.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a local directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP service
//   - [NullCache]: disables caching
//
// All backends are safe for concurrent use.
//
// # Keys
//
// A [Keyer] derives keys from the graph hash and the options that influence
// an artifact, so any change to the graph or to the frame, edge geometry,
// renderer or format produces a different key. [ScopedKeyer] prefixes keys to
// keep tenants or environments apart in a shared backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A missing or expired entry is
	// a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLArtifact is the default lifetime of a rendered artifact. Keys already
// cover every input, so entries only expire to bound disk and memory use.
const TTLArtifact = 7 * 24 * time.Hour
