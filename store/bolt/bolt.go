// Package bolt adapts an embedded bbolt database file to the store.Store
// capability. Buckets map to native bbolt buckets. Suited to single-node
// deployments, dev boxes, and tests; there is no server to run.
//
// Content types are not persisted: bbolt stores raw bytes only.
package bolt

import (
	"bytes"
	"context"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/unkn0wn-root/bucketcache/store"
)

type Store struct {
	db *bolt.DB
}

var _ store.Store = (*Store)(nil)

type Config struct {
	Path    string        // database file; created if missing
	Mode    os.FileMode   // 0 = 0600
	Timeout time.Duration // file-lock wait; 0 blocks until the lock frees
}

func New(cfg Config) (*Store, error) {
	mode := cfg.Mode
	if mode == 0 {
		mode = 0o600
	}
	db, err := bolt.Open(cfg.Path, mode, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Wrap adapts a database the application already owns. Close will close it.
func Wrap(db *bolt.DB) *Store { return &Store{db: db} }

func (s *Store) BucketExists(_ context.Context, bucket string) (bool, error) {
	var exists bool
	err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket([]byte(bucket)) != nil
		return nil
	})
	return exists, err
}

func (s *Store) MakeBucket(_ context.Context, bucket string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
}

func (s *Store) GetObject(_ context.Context, bucket, name string) ([]byte, bool, error) {
	var (
		data  []byte
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bolt.ErrBucketNotFound
		}
		v := b.Get([]byte(name))
		if v == nil {
			return nil
		}
		// bbolt slices are only valid inside the transaction
		data = append([]byte(nil), v...)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, found, nil
}

func (s *Store) PutObject(_ context.Context, bucket, name string, data []byte, _ string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bolt.ErrBucketNotFound
		}
		return b.Put([]byte(name), data)
	})
}

func (s *Store) RemoveObject(_ context.Context, bucket, name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bolt.ErrBucketNotFound
		}
		// Delete on an absent key is already a no-op
		return b.Delete([]byte(name))
	})
}

func (s *Store) ListObjects(_ context.Context, bucket, prefix string) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bolt.ErrBucketNotFound
		}
		c := b.Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *Store) Close(context.Context) error { return s.db.Close() }
