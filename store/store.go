// Package store defines the object-store capability bucketcache runs on.
//
// Implementations MUST be byte-for-byte transparent: GetObject must return
// exactly the same []byte that was previously passed to PutObject for a name
// (no prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g., compression), they MUST be fully
// reversed so that the bytes returned by GetObject are identical to the bytes
// provided to PutObject.
//
// Implementations own connection hygiene: GetObject must release any handle,
// body, or pooled connection on every return path, hit or miss or error.
// Callers never see the transport.
package store

import "context"

// Store is a minimal bucket-and-object capability. Must be safe for
// concurrent use. Buckets are flat namespaces; object names are opaque byte
// strings chosen by the caller.
type Store interface {
	// BucketExists reports whether the bucket exists. Stores without a real
	// bucket concept may degrade this to a constant (and must say so).
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// MakeBucket creates the bucket. Creating an existing bucket is not an
	// error for implementations that cannot distinguish the case.
	MakeBucket(ctx context.Context, bucket string) error

	// GetObject returns (data, true, nil) on hit; (nil, false, nil) when the
	// object does not exist. If an IO/remote error happens, return
	// (nil, false, err).
	GetObject(ctx context.Context, bucket, name string) ([]byte, bool, error)

	// PutObject stores data under name with the given content type, creating
	// or replacing the object. Implementations that do not persist content
	// types may ignore the argument (and must say so).
	PutObject(ctx context.Context, bucket, name string, data []byte, contentType string) error

	// RemoveObject deletes an object. Removing an absent object is success.
	RemoveObject(ctx context.Context, bucket, name string) error

	// ListObjects returns the names of all objects in the bucket whose name
	// starts with prefix, recursing into any delimiter hierarchy. An empty
	// prefix lists the whole bucket.
	ListObjects(ctx context.Context, bucket, prefix string) ([]string, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
