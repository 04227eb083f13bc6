package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidatorTagIsolation(t *testing.T) {
	kv := newMemoryKV()
	inv := NewInvalidator(kv, zerolog.Nop())
	ctx := context.Background()

	q := Query{Page: 1, Limit: 8, SortType: SortAsc}
	seed := []string{
		CollectionKey(TagProducts, q),
		StatusCollectionKey(TagProducts, q, StatusActive),
		CollectionKey(TagCategories, q),
		DocumentKey(KindProduct, testID),
	}
	for _, k := range seed {
		require.NoError(t, kv.Set(ctx, k, []byte("[]"), time.Minute))
	}

	removed, err := inv.InvalidateCollection(ctx, TagProducts)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// Another tag's pages and the singular document entry are untouched.
	_, err = kv.Get(ctx, CollectionKey(TagCategories, q))
	assert.NoError(t, err)
	_, err = kv.Get(ctx, DocumentKey(KindProduct, testID))
	assert.NoError(t, err)
}

func TestInvalidatorEmptyNamespace(t *testing.T) {
	kv := newMemoryKV()
	inv := NewInvalidator(kv, zerolog.Nop())

	removed, err := inv.InvalidateCollection(context.Background(), TagReviews)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestInvalidatorDocument(t *testing.T) {
	kv := newMemoryKV()
	inv := NewInvalidator(kv, zerolog.Nop())
	ctx := context.Background()

	key := DocumentKey(KindOrder, testID)
	require.NoError(t, kv.Set(ctx, key, []byte("{}"), time.Minute))

	require.NoError(t, inv.InvalidateDocument(ctx, KindOrder, testID))
	_, err := kv.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotCached)

	// Deleting an absent entry is not an error.
	assert.NoError(t, inv.InvalidateDocument(ctx, KindOrder, testID))
}
