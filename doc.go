// Package bucketcache implements a store-agnostic cache backend over object
// storage (MinIO/S3 and friends). Values are serialized by a pluggable
// Codec[V] and written as bucket objects; every entry embeds its absolute
// expiry, and readers treat expired entries as absent, deleting them lazily.
// The store is never asked to expire anything.
//
// Components:
//   - store.Store: bucket-and-object capability (store/minio, store/bolt,
//     store/redis, store/mem).
//   - Codec[V]: (de)serializes V <-> []byte. Msgpack by default.
//   - envelope (internal): binds the encoded value to its expiry timestamp.
//
// Objects:
//
//	<key_prefix><key>  - one object per entry, e.g. "cache:user:42"
//
// The prefix is the namespace boundary: Clear removes exactly the objects
// under it and nothing else, so one bucket can host several backends (or
// foreign data) side by side.
//
// Failure policy: New is the only error surface (option validation plus the
// bucket guard). Everything after that is fail-soft: reads miss, writes
// report false, and the fault goes to the Logger and Hooks. Corrupt or
// undecodable entries are removed on read (self-heal).
//
// Add is check-then-write, not atomic: two concurrent Adds can both pass the
// existence check, and the second write wins. Object stores offer no
// generally available conditional put that would close the race.
package bucketcache
