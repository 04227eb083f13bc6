package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotCached is returned by KV.Get when the key is absent. Absence is
	// distinct from a cached empty payload.
	ErrNotCached = errors.New("key not cached")

	// ErrNotFound is returned when the document store has no matching
	// document. Negative results are never cached.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned for malformed document identifiers before
	// any cache or store access happens.
	ErrInvalidID = errors.New("invalid document id")
)

// KV is the key-value store surface the caching layer consumes. The Redis
// client implements it in production; tests use an in-memory fake.
type KV interface {
	// Get returns the payload stored under key, or ErrNotCached.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the payload under key, overwriting unconditionally.
	// A zero ttl stores without expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Del removes the given keys and reports how many existed.
	Del(ctx context.Context, keys ...string) (int64, error)
	// Keys returns a snapshot of all key names. The snapshot may race with
	// concurrent writers; callers must tolerate keys vanishing before Del.
	Keys(ctx context.Context) ([]string, error)
}
