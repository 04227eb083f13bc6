package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecomly/ecomly-api/internal/metrics"
)

// Invalidator removes cache entries after confirmed store mutations. It is
// shared by every engine instance; it holds no state beyond the KV handle.
type Invalidator struct {
	kv  KV
	log zerolog.Logger
}

// NewInvalidator creates an invalidator over the given KV store.
func NewInvalidator(kv KV, log zerolog.Logger) *Invalidator {
	return &Invalidator{kv: kv, log: log}
}

// InvalidateCollection deletes every cached key whose namespace segment
// equals the tag. It walks the full key snapshot, which is O(total keys);
// the key population is bounded by the distinct query shapes actually
// requested, so this stays cheap at this deployment's scale.
func (i *Invalidator) InvalidateCollection(ctx context.Context, tag Tag) (int64, error) {
	keys, err := i.kv.Keys(ctx)
	if err != nil {
		metrics.RecordCacheOperation("invalidate_collection", "error")
		return 0, fmt.Errorf("listing cache keys: %w", err)
	}

	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if keyNamespace(key) == string(tag) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		metrics.RecordCacheOperation("invalidate_collection", "empty")
		return 0, nil
	}

	removed, err := i.kv.Del(ctx, matched...)
	if err != nil {
		metrics.RecordCacheOperation("invalidate_collection", "error")
		return 0, fmt.Errorf("deleting cache keys: %w", err)
	}

	metrics.RecordCacheOperation("invalidate_collection", "success")
	i.log.Debug().
		Str("tag", string(tag)).
		Int64("removed", removed).
		Msg("Invalidated collection cache")
	return removed, nil
}

// InvalidateDocument deletes the single cached entry for (kind, id).
func (i *Invalidator) InvalidateDocument(ctx context.Context, kind Kind, id string) error {
	if _, err := i.kv.Del(ctx, DocumentKey(kind, id)); err != nil {
		metrics.RecordCacheOperation("invalidate_document", "error")
		return fmt.Errorf("deleting cache key: %w", err)
	}
	metrics.RecordCacheOperation("invalidate_document", "success")
	return nil
}
