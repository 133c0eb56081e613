package bucketcache

import "time"

const (
	// DefaultTTL applies when Options.DefaultTTL is zero and a write passes
	// a non-positive ttl.
	DefaultTTL = 5 * time.Minute

	// DefaultKeyPrefix namespaces cache objects inside the bucket and scopes
	// Clear. Object name = prefix + key, plain concatenation.
	DefaultKeyPrefix = "cache:"
)

// Stored entries are opaque binary envelopes regardless of codec.
const contentTypeBinary = "application/octet-stream"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
