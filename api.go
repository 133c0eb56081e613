package bucketcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/bucketcache/codec"
	st "github.com/unkn0wn-root/bucketcache/store"
)

type Cache[V any] = Backend[V] // just an alias -> bucketcache.Cache[User] or bucketcache.Backend[User]

// Backend is the high-level, store-agnostic cache API. V is the caller's
// value type; serialization is handled by a pluggable Codec[V].
//
// Steady-state operations are fail-soft: store faults come back as a miss or
// a false result, never as an error. The only error surface is New, which
// validates options and runs the bucket guard. Expiry is application-managed:
// every entry embeds its absolute deadline, readers treat expired entries as
// absent and delete them lazily. The store is never asked to expire anything.
type Backend[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Get returns the live value for key. Misses, expired entries, corrupt
	// entries, and store faults all come back as (zero, false).
	Get(ctx context.Context, key string) (V, bool)

	// Has reports whether key holds a live value. It pays the full read and
	// shares Get's lazy-expiry side effect.
	Has(ctx context.Context, key string) bool

	// Set stores value under key with the given ttl (<= 0 means DefaultTTL).
	// It reports whether the write landed.
	Set(ctx context.Context, key string, value V, ttl time.Duration) bool

	// Add stores value only when key has no live entry. It reports false
	// when the key was occupied or the write failed. Check-then-write: two
	// concurrent Adds can both pass the check; last write wins.
	Add(ctx context.Context, key string, value V, ttl time.Duration) bool

	// Delete removes key. Deleting an absent key is success; only a store
	// fault reports false.
	Delete(ctx context.Context, key string) bool

	// Clear removes every object under the configured key prefix, leaving
	// foreign objects in the bucket alone. It reports false when listing
	// failed or any removal failed; the sweep still visits every object.
	Clear(ctx context.Context) bool

	// GetMany looks keys up one by one; results align with keys.
	GetMany(ctx context.Context, keys ...string) []Result[V]

	// SetMany stores all items and returns the keys that failed, in sorted
	// key order. Empty result = all good.
	SetMany(ctx context.Context, items map[string]V, ttl time.Duration) []string

	// DeleteMany removes all keys and reports whether every delete
	// succeeded. It never stops early.
	DeleteMany(ctx context.Context, keys ...string) bool
}

// Result pairs a value with its hit flag for GetMany.
type Result[V any] struct {
	Value V
	OK    bool
}

// Options tune the generic cache backend.
// Only Store, Bucket and Codec are required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Store  st.Store // object-store capability (store/minio, store/bolt, ...)
	Bucket string   // bucket holding the cache objects
	Codec  c.Codec[V]

	Logger     Logger        // if nil, NopLogger is used
	Hooks      Hooks         // if nil, NopHooks is used
	DefaultTTL time.Duration // 0 => 5m
	KeyPrefix  string        // object name = KeyPrefix + key; "" => "cache:"
	Disabled   bool          // kill switch: reads miss, writes succeed, store untouched
}

// New validates opts, ensures the bucket exists (creating it when missing),
// and returns the backend. A store fault during the guard comes back as a
// *BucketInitError; nothing else in the lifecycle returns an error.
func New[V any](ctx context.Context, opts Options[V]) (Backend[V], error) {
	return newBackend[V](ctx, opts)
}
