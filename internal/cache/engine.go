package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecomly/ecomly-api/internal/metrics"
)

// Store is the document-store surface an engine falls back to on cache
// miss. A nil document from FindByID means absent; an empty slice from
// FindMany means zero matches. Both are non-error outcomes.
type Store[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	FindMany(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, searchBy string) (int64, error)
}

// Config parameterizes an engine for one entity. A single generic engine
// replaces the per-entity read-through logic that would otherwise be
// duplicated six times.
type Config[T any] struct {
	Kind Kind
	Tag  Tag
	// TTL bounds worst-case staleness from the populate/invalidate race.
	TTL time.Duration
	// DefaultLimit is the page size applied when the request omits one.
	DefaultLimit int
	// Project strips server-only fields (password hashes and the like)
	// before a document is cached or returned. Nil means identity.
	Project func(T) T
}

// Document is a single-document read result.
type Document[T any] struct {
	FromCache bool `json:"from_cache"`
	Payload   T    `json:"payload"`
}

// Collection is a paginated collection read result. Pagination is always
// freshly computed, even when Items came from cache.
type Collection[T any] struct {
	FromCache  bool       `json:"from_cache"`
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Engine implements cache-aside reads for one entity kind. It owns no
// state; all its methods are pure orchestration over the injected KV and
// Store. Cache failures of any sort degrade to a miss and never surface.
type Engine[T any] struct {
	cfg   Config[T]
	kv    KV
	store Store[T]
	inv   *Invalidator
	log   zerolog.Logger
}

// DefaultTTL matches the production expiry of two days; staleness from the
// accepted cache-aside race is bounded by it.
const DefaultTTL = 48 * time.Hour

// DefaultPageLimit is the collection page size when the request omits one.
const DefaultPageLimit = 8

// NewEngine creates an engine for one entity kind.
func NewEngine[T any](cfg Config[T], kv KV, store Store[T], log zerolog.Logger) *Engine[T] {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultPageLimit
	}
	return &Engine[T]{
		cfg:   cfg,
		kv:    kv,
		store: store,
		inv:   NewInvalidator(kv, log),
		log:   log.With().Str("cache_kind", string(cfg.Kind)).Logger(),
	}
}

// isValidID reports whether id has the shape of a hex ObjectID. Malformed
// ids are rejected before any cache or store round trip.
func isValidID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, c := range id {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// GetDocument returns the document with the given id, serving from cache
// when possible. Absent documents return ErrNotFound and are never cached,
// so a later create of the same id is immediately visible.
func (e *Engine[T]) GetDocument(ctx context.Context, id string) (*Document[T], error) {
	if !isValidID(id) {
		return nil, ErrInvalidID
	}

	key := DocumentKey(e.cfg.Kind, id)
	if payload, ok := e.cacheGet(ctx, key); ok {
		var doc T
		if err := json.Unmarshal(payload, &doc); err == nil {
			metrics.RecordCacheOperation("get_document", "hit")
			return &Document[T]{FromCache: true, Payload: doc}, nil
		}
		// Undecodable entry: fall through to the store and overwrite it.
		e.log.Warn().Str("key", key).Msg("Dropping undecodable cache entry")
	}
	metrics.RecordCacheOperation("get_document", "miss")

	found, err := e.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding %s %s: %w", e.cfg.Kind, id, err)
	}
	if found == nil {
		return nil, ErrNotFound
	}

	doc := e.project(*found)
	e.cacheSet(ctx, key, doc)
	return &Document[T]{FromCache: false, Payload: doc}, nil
}

// GetCollection returns one page of the collection, serving the item array
// from cache when possible. The count query always runs live so pagination
// reflects the store even on a hit. An empty result page is ErrNotFound.
func (e *Engine[T]) GetCollection(ctx context.Context, q Query) (*Collection[T], error) {
	q = q.normalize(e.cfg.DefaultLimit)

	var key string
	if q.Status != "" {
		key = StatusCollectionKey(e.cfg.Tag, q, q.Status)
	} else {
		key = CollectionKey(e.cfg.Tag, q)
	}

	if payload, ok := e.cacheGet(ctx, key); ok {
		var items []T
		if err := json.Unmarshal(payload, &items); err == nil {
			metrics.RecordCacheOperation("get_collection", "hit")
			total, err := e.store.Count(ctx, q.SearchBy)
			if err != nil {
				return nil, fmt.Errorf("counting %s: %w", e.cfg.Tag, err)
			}
			return &Collection[T]{
				FromCache:  true,
				Items:      items,
				Pagination: NewPagination(e.cfg.Tag, q.Page, q.Limit, total),
			}, nil
		}
		e.log.Warn().Str("key", key).Msg("Dropping undecodable cache entry")
	}
	metrics.RecordCacheOperation("get_collection", "miss")

	found, err := e.store.FindMany(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", e.cfg.Tag, err)
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	items := make([]T, len(found))
	for i, doc := range found {
		items[i] = e.project(doc)
	}
	e.cacheSet(ctx, key, items)

	total, err := e.store.Count(ctx, q.SearchBy)
	if err != nil {
		return nil, fmt.Errorf("counting %s: %w", e.cfg.Tag, err)
	}

	return &Collection[T]{
		FromCache:  false,
		Items:      items,
		Pagination: NewPagination(e.cfg.Tag, q.Page, q.Limit, total),
	}, nil
}

// InvalidateCollection removes every cached page of this engine's
// collection. Call it only after the store write is confirmed.
func (e *Engine[T]) InvalidateCollection(ctx context.Context) int64 {
	removed, err := e.inv.InvalidateCollection(ctx, e.cfg.Tag)
	if err != nil {
		// Stale listings are bounded by TTL; the mutation already
		// succeeded, so the request must not fail here.
		e.log.Warn().Err(err).Msg("Collection invalidation failed")
		return 0
	}
	return removed
}

// InvalidateDocument removes the cached entry for one document.
func (e *Engine[T]) InvalidateDocument(ctx context.Context, id string) {
	if err := e.inv.InvalidateDocument(ctx, e.cfg.Kind, id); err != nil {
		e.log.Warn().Err(err).Str("id", id).Msg("Document invalidation failed")
	}
}

// Repopulate writes the fresh post-mutation value straight into the
// document cache so the next read does not pay a miss.
func (e *Engine[T]) Repopulate(ctx context.Context, id string, doc T) {
	e.cacheSet(ctx, DocumentKey(e.cfg.Kind, id), e.project(doc))
}

// project applies the configured projection, defaulting to identity.
func (e *Engine[T]) project(doc T) T {
	if e.cfg.Project == nil {
		return doc
	}
	return e.cfg.Project(doc)
}

// cacheGet reads a key, absorbing every cache failure as a miss.
func (e *Engine[T]) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	payload, err := e.kv.Get(ctx, key)
	if err != nil {
		if err != ErrNotCached {
			metrics.RecordCacheOperation("get", "error")
			e.log.Warn().Err(err).Str("key", key).Msg("Cache read failed, treating as miss")
		}
		return nil, false
	}
	return payload, true
}

// cacheSet serializes and stores a value, logging instead of failing when
// the cache is unavailable.
func (e *Engine[T]) cacheSet(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		e.log.Error().Err(err).Str("key", key).Msg("Cache payload marshal failed")
		return
	}
	if err := e.kv.Set(ctx, key, payload, e.cfg.TTL); err != nil {
		metrics.RecordCacheOperation("set", "error")
		e.log.Warn().Err(err).Str("key", key).Msg("Cache write failed, continuing without it")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}
