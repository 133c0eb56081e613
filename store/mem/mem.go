// Package mem is an in-process object-store emulator on top of bigcache.
// It exists for dev mode and for testing consumers without a real endpoint;
// nothing here survives a restart.
//
// Buckets are tracked as a plain set and degrade to a "bucket/" key prefix
// inside the shared cache. Content types are not persisted.
package mem

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/bucketcache/store"
)

var ErrBucketNotFound = errors.New("mem store: bucket not found")

type Store struct {
	c *bc.BigCache

	mu      sync.RWMutex
	buckets map[string]struct{}
}

var _ store.Store = (*Store)(nil)

type Config struct {
	// LifeWindow bounds how long bigcache retains an entry. Keep it above
	// the largest envelope TTL you use; readers handle expiry themselves.
	// 0 = 12h.
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Store, error) {
	life := cfg.LifeWindow
	if life <= 0 {
		life = 12 * time.Hour
	}
	conf := bc.DefaultConfig(life)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c, buckets: make(map[string]struct{})}, nil
}

func (s *Store) BucketExists(_ context.Context, bucket string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.buckets[bucket]
	return ok, nil
}

func (s *Store) MakeBucket(_ context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[bucket] = struct{}{}
	return nil
}

func (s *Store) hasBucket(bucket string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.buckets[bucket]
	return ok
}

func objectKey(bucket, name string) string { return bucket + "/" + name }

func (s *Store) GetObject(_ context.Context, bucket, name string) ([]byte, bool, error) {
	if !s.hasBucket(bucket) {
		return nil, false, ErrBucketNotFound
	}
	b, err := s.c.Get(objectKey(bucket, name))
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) PutObject(_ context.Context, bucket, name string, data []byte, _ string) error {
	if !s.hasBucket(bucket) {
		return ErrBucketNotFound
	}
	return s.c.Set(objectKey(bucket, name), data)
}

func (s *Store) RemoveObject(_ context.Context, bucket, name string) error {
	if !s.hasBucket(bucket) {
		return ErrBucketNotFound
	}
	err := s.c.Delete(objectKey(bucket, name))
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (s *Store) ListObjects(_ context.Context, bucket, prefix string) ([]string, error) {
	if !s.hasBucket(bucket) {
		return nil, ErrBucketNotFound
	}
	full := objectKey(bucket, prefix)
	bucketPrefix := bucket + "/"

	var names []string
	it := s.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(e.Key(), full) {
			names = append(names, strings.TrimPrefix(e.Key(), bucketPrefix))
		}
	}
	return names, nil
}

func (s *Store) Close(context.Context) error { return s.c.Close() }
