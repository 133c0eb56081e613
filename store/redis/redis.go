// Package redis adapts a redis client to the store.Store capability.
//
// Redis has no bucket hierarchy, so buckets degrade to a "bucket/" key
// prefix: BucketExists always reports true, MakeBucket is a no-op, and
// ListObjects scans by key pattern. Content types are not persisted.
package redis

import (
	"context"
	"errors"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/bucketcache/store"
)

var ErrNilClient = errors.New("redis store: nil client")

type Store struct {
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ store.Store = (*Store)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this store exclusively owns the client
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Store{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (s *Store) BucketExists(context.Context, string) (bool, error) { return true, nil }

func (s *Store) MakeBucket(context.Context, string) error { return nil }

func objectKey(bucket, name string) string { return bucket + "/" + name }

func (s *Store) GetObject(ctx context.Context, bucket, name string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, objectKey(bucket, name)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

// PutObject stores without a redis-side TTL: expiry lives in the value
// envelope and cleanup is the reader's job, same as on a real object store.
func (s *Store) PutObject(ctx context.Context, bucket, name string, data []byte, _ string) error {
	return s.rdb.Set(ctx, objectKey(bucket, name), data, 0).Err()
}

func (s *Store) RemoveObject(ctx context.Context, bucket, name string) error {
	// DEL of a missing key reports 0 deleted, not an error
	return s.rdb.Del(ctx, objectKey(bucket, name)).Err()
}

func (s *Store) ListObjects(ctx context.Context, bucket, prefix string) ([]string, error) {
	// MATCH treats the pattern as a glob; glob metacharacters inside bucket
	// or prefix are not escaped here.
	pattern := objectKey(bucket, prefix) + "*"
	var names []string
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), bucket+"/"))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
