package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
)

func newCategoryFixture() (*eventLog, *fakeKV, *fakeWriter[model.Category], CategoryService) {
	log := &eventLog{}
	kv := newFakeKV(log)
	writer := newFakeWriter[model.Category](log, "categories")
	engine := cache.NewEngine(cache.Config[model.Category]{
		Kind: cache.KindCategory,
		Tag:  cache.TagCategories,
	}, kv, stubStore[model.Category]{}, zerolog.Nop())
	return log, kv, writer, NewCategoryService(engine, writer)
}

func TestCategoryService_CreateInvalidatesOnceAfterWrite(t *testing.T) {
	log, kv, writer, svc := newCategoryFixture()

	category, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "Fruit",
		Description: "Fresh fruit",
	})
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "fruit", category.Slug)

	assert.Equal(t, 1, log.count("cache_invalidate"),
		"a confirmed create must invalidate the collection exactly once")
	assert.Less(t, log.indexOf("categories_insert"), log.indexOf("cache_invalidate"),
		"invalidation must happen strictly after the store write")

	docKey := cache.DocumentKey(cache.KindCategory, writer.insertedID.Hex())
	assert.True(t, kv.has(docKey), "fresh document should be repopulated")
}

func TestCategoryService_FailedWriteNeverInvalidates(t *testing.T) {
	log, _, writer, svc := newCategoryFixture()
	writer.insertErr = errStoreDown

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "Fruit",
		Description: "Fresh fruit",
	})
	require.ErrorIs(t, err, errStoreDown)

	assert.Zero(t, log.count("cache_invalidate"),
		"a failed write must not touch the cache")
}

func TestCategoryService_CreateDuplicateName(t *testing.T) {
	log, _, writer, svc := newCategoryFixture()
	writer.seedOneBy("name", "Fruit", &model.Category{Name: "Fruit"})

	_, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:        "Fruit",
		Description: "Fresh fruit",
	})
	assert.ErrorIs(t, err, ErrNameTaken)
	assert.Zero(t, log.count("cache_invalidate"))
	assert.Zero(t, log.count("categories_insert"))
}

func TestCategoryService_UpdateStatusRefreshesCache(t *testing.T) {
	log, kv, writer, svc := newCategoryFixture()

	id := writer.insertedID
	writer.docs[id] = &model.Category{ID: id, Name: "Fruit", Status: model.StatusActive}

	updated, err := svc.UpdateStatus(context.Background(), id.Hex(), model.StatusInactive)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 1, log.count("cache_invalidate"))
	assert.Less(t, log.indexOf("categories_update"), log.indexOf("cache_invalidate"))
	assert.True(t, kv.has(cache.DocumentKey(cache.KindCategory, id.Hex())))
}

func TestCategoryService_DeleteDropsDocumentAndListings(t *testing.T) {
	log, kv, writer, svc := newCategoryFixture()

	id := writer.insertedID
	writer.docs[id] = &model.Category{ID: id, Name: "Fruit"}
	docKey := cache.DocumentKey(cache.KindCategory, id.Hex())
	require.NoError(t, kv.Set(context.Background(), docKey, []byte(`{}`), 0))

	require.NoError(t, svc.Delete(context.Background(), id.Hex()))

	assert.Equal(t, 1, log.count("cache_invalidate"))
	assert.Less(t, log.indexOf("categories_delete"), log.indexOf("cache_invalidate"))
	assert.False(t, kv.has(docKey))
}

func TestCategoryService_DeleteMissing(t *testing.T) {
	log, _, _, svc := newCategoryFixture()

	err := svc.Delete(context.Background(), "68a1f0c2e5b4a3d2c1f0e9d8")
	assert.ErrorIs(t, err, cache.ErrNotFound)
	assert.Zero(t, log.count("cache_invalidate"))
}
