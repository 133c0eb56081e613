// Package minio adapts a MinIO (or any S3-compatible) endpoint to the
// store.Store capability. This is the primary production adapter.
package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	gominio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/unkn0wn-root/bucketcache/store"
)

var ErrNoEndpoint = errors.New("minio store: endpoint is required")

type Store struct {
	mc *gominio.Client
}

var _ store.Store = (*Store)(nil)

type Config struct {
	// Client, when set, is used as-is and the dialing fields below are
	// ignored. Set it to share a client the application already owns.
	Client *gominio.Client

	Endpoint  string // host[:port], no scheme
	AccessKey string // empty key pair = anonymous access
	SecretKey string
	Secure    bool   // TLS
	Region    string // optional; avoids a lookup roundtrip when set

	// Transport overrides the HTTP transport, e.g. for custom CAs or
	// proxies. Optional.
	Transport http.RoundTripper
}

func New(cfg Config) (*Store, error) {
	if cfg.Client != nil {
		return &Store{mc: cfg.Client}, nil
	}
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	mc, err := gominio.New(cfg.Endpoint, &gominio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.Secure,
		Region:    cfg.Region,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Store{mc: mc}, nil
}

func (s *Store) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return s.mc.BucketExists(ctx, bucket)
}

func (s *Store) MakeBucket(ctx context.Context, bucket string) error {
	return s.mc.MakeBucket(ctx, bucket, gominio.MakeBucketOptions{})
}

func (s *Store) GetObject(ctx context.Context, bucket, name string) ([]byte, bool, error) {
	obj, err := s.mc.GetObject(ctx, bucket, name, gominio.GetObjectOptions{})
	if err != nil {
		return nil, false, err
	}
	// The request fires on first read, so errors (including "no such key")
	// surface from ReadAll. Close on every path returns the connection to
	// the transport pool.
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *Store) PutObject(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	_, err := s.mc.PutObject(ctx, bucket, name, bytes.NewReader(data), int64(len(data)),
		gominio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s *Store) RemoveObject(ctx context.Context, bucket, name string) error {
	err := s.mc.RemoveObject(ctx, bucket, name, gominio.RemoveObjectOptions{})
	if err != nil && isNoSuchKey(err) {
		return nil
	}
	return err
}

func (s *Store) ListObjects(ctx context.Context, bucket, prefix string) ([]string, error) {
	var names []string
	for info := range s.mc.ListObjects(ctx, bucket, gominio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, info.Err
		}
		names = append(names, info.Key)
	}
	return names, nil
}

// Close is a no-op: the client pools connections inside its HTTP transport
// and has no teardown of its own.
func (s *Store) Close(context.Context) error { return nil }

func isNoSuchKey(err error) bool {
	return gominio.ToErrorResponse(err).Code == "NoSuchKey"
}
