package bucketcache

import (
	"context"
	"fmt"
	"sort"
	"time"

	c "github.com/unkn0wn-root/bucketcache/codec"
	"github.com/unkn0wn-root/bucketcache/internal/envelope"
	st "github.com/unkn0wn-root/bucketcache/store"
)

type backend[V any] struct {
	store      st.Store
	bucket     string
	codec      c.Codec[V]
	log        Logger
	hooks      Hooks
	enabled    bool
	defaultTTL time.Duration
	prefix     string

	now func() time.Time // injectable clock for expiry tests
}

func newBackend[V any](ctx context.Context, opts Options[V]) (*backend[V], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("bucketcache: store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("bucketcache: codec is required")
	}
	if opts.Bucket == "" {
		return nil, fmt.Errorf("bucketcache: bucket is required")
	}

	b := &backend[V]{
		store:   opts.Store,
		bucket:  opts.Bucket,
		codec:   opts.Codec,
		enabled: !opts.Disabled,
		now:     time.Now,
	}

	// defaults
	b.log = coalesce[Logger](opts.Logger, NopLogger{})
	b.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	b.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, DefaultTTL)
	b.prefix = coalesce[string](opts.KeyPrefix, DefaultKeyPrefix)

	// Bucket guard, the one place errors escape. A disabled backend skips
	// it: the kill switch has to work while the store is down.
	if b.enabled {
		exists, err := b.store.BucketExists(ctx, b.bucket)
		if err != nil {
			return nil, &BucketInitError{Bucket: b.bucket, CheckErr: err}
		}
		if !exists {
			if err := b.store.MakeBucket(ctx, b.bucket); err != nil {
				return nil, &BucketInitError{Bucket: b.bucket, MakeErr: err}
			}
			b.log.Info("created cache bucket", Fields{"bucket": b.bucket})
		}
	}

	return b, nil
}

func (b *backend[V]) Enabled() bool { return b.enabled }

func (b *backend[V]) Close(ctx context.Context) error {
	return b.store.Close(ctx)
}

func (b *backend[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	if !b.enabled {
		return zero, false
	}
	name := b.objectName(key)
	raw, ok, err := b.store.GetObject(ctx, b.bucket, name)
	if err != nil {
		b.log.Warn("get: store read failed", Fields{"object": name, "err": err})
		b.hooks.StoreFault("get", name, err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	expiresAt, payload, err := envelope.Decode(raw)
	if err != nil {
		// foreign or damaged bytes under our prefix; heal by removing
		b.log.Warn("get: corrupt envelope, removing", Fields{"object": name})
		b.hooks.SelfHeal(name, "corrupt")
		b.remove(ctx, name)
		return zero, false
	}
	if !b.now().Before(expiresAt) {
		// lazy expiry: the reader cleans up, the store never expires anything
		b.log.Debug("get: entry expired, removing", Fields{"object": name})
		b.hooks.ExpiredEntry(name)
		b.remove(ctx, name)
		return zero, false
	}

	v, err := b.codec.Decode(payload)
	if err != nil {
		b.log.Warn("get: value decode failed, removing", Fields{"object": name, "err": err})
		b.hooks.SelfHeal(name, "value_decode")
		b.remove(ctx, name)
		return zero, false
	}
	return v, true
}

func (b *backend[V]) Has(ctx context.Context, key string) bool {
	_, ok := b.Get(ctx, key)
	return ok
}

func (b *backend[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) bool {
	if !b.enabled {
		return true
	}
	name := b.objectName(key)
	payload, err := b.codec.Encode(value)
	if err != nil {
		b.log.Warn("set: encode failed", Fields{"object": name, "err": err})
		return false
	}
	data := envelope.Encode(b.now().Add(b.ttlOrDefault(ttl)), payload)
	if err := b.store.PutObject(ctx, b.bucket, name, data, contentTypeBinary); err != nil {
		b.log.Warn("set: store write failed", Fields{"object": name, "err": err})
		b.hooks.StoreFault("set", name, err)
		return false
	}
	return true
}

func (b *backend[V]) Add(ctx context.Context, key string, value V, ttl time.Duration) bool {
	// Check-then-write; an expired or corrupt entry counts as absent because
	// Has already removed it. Concurrent Adds can both pass the check.
	if b.Has(ctx, key) {
		b.log.Debug("add: key occupied, skipping", Fields{"key": key})
		return false
	}
	return b.Set(ctx, key, value, ttl)
}

func (b *backend[V]) Delete(ctx context.Context, key string) bool {
	if !b.enabled {
		return true
	}
	name := b.objectName(key)
	if err := b.store.RemoveObject(ctx, b.bucket, name); err != nil {
		b.log.Warn("delete: store remove failed", Fields{"object": name, "err": err})
		b.hooks.StoreFault("delete", name, err)
		return false
	}
	return true
}

func (b *backend[V]) Clear(ctx context.Context) bool {
	if !b.enabled {
		return true
	}
	names, err := b.store.ListObjects(ctx, b.bucket, b.prefix)
	if err != nil {
		b.log.Warn("clear: listing failed", Fields{"bucket": b.bucket, "prefix": b.prefix, "err": err})
		b.hooks.StoreFault("clear", b.prefix, err)
		return false
	}

	failed := 0
	for _, name := range names {
		if err := b.store.RemoveObject(ctx, b.bucket, name); err != nil {
			b.log.Warn("clear: remove failed, continuing sweep", Fields{"object": name, "err": err})
			b.hooks.StoreFault("clear", name, err)
			failed++
		}
	}
	b.hooks.SweepDone(len(names)-failed, failed)
	return failed == 0
}

func (b *backend[V]) GetMany(ctx context.Context, keys ...string) []Result[V] {
	out := make([]Result[V], len(keys))
	for i, k := range keys {
		v, ok := b.Get(ctx, k)
		out[i] = Result[V]{Value: v, OK: ok}
	}
	return out
}

func (b *backend[V]) SetMany(ctx context.Context, items map[string]V, ttl time.Duration) []string {
	if len(items) == 0 {
		return nil
	}

	// deterministic write and failure order
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var failed []string
	for _, k := range keys {
		if !b.Set(ctx, k, items[k], ttl) {
			failed = append(failed, k)
		}
	}
	return failed
}

func (b *backend[V]) DeleteMany(ctx context.Context, keys ...string) bool {
	ok := true
	for _, k := range keys {
		// keep going; the result is the AND of every removal
		if !b.Delete(ctx, k) {
			ok = false
		}
	}
	return ok
}

// remove is the internal best-effort removal behind self-heal and lazy
// expiry. Faults are logged and hooked, never surfaced.
func (b *backend[V]) remove(ctx context.Context, name string) {
	if err := b.store.RemoveObject(ctx, b.bucket, name); err != nil {
		b.log.Warn("remove failed", Fields{"object": name, "err": err})
		b.hooks.StoreFault("delete", name, err)
	}
}

func (b *backend[V]) ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return b.defaultTTL
	}
	return ttl
}

func (b *backend[V]) objectName(key string) string {
	// prefix is the namespace boundary and the Clear scope
	return b.prefix + key
}
