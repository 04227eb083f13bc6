package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/cache"
)

// eventLog records the order of store writes and cache invalidations so
// tests can assert that invalidation happens only after a confirmed write.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

func (l *eventLog) count(event string) int {
	n := 0
	for _, e := range l.all() {
		if e == event {
			n++
		}
	}
	return n
}

func (l *eventLog) indexOf(event string) int {
	for i, e := range l.all() {
		if e == event {
			return i
		}
	}
	return -1
}

// fakeKV implements cache.KV in memory. Keys snapshots are what the
// invalidator walks, so every Keys call marks one collection invalidation.
type fakeKV struct {
	mu   sync.Mutex
	log  *eventLog
	data map[string][]byte
}

func newFakeKV(log *eventLog) *fakeKV {
	return &fakeKV{log: log, data: make(map[string][]byte)}
}

func (kv *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	val, ok := kv.data[key]
	if !ok {
		return nil, cache.ErrNotCached
	}
	return val, nil
}

func (kv *fakeKV) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}

func (kv *fakeKV) Del(_ context.Context, keys ...string) (int64, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := kv.data[key]; ok {
			delete(kv.data, key)
			removed++
		}
	}
	return removed, nil
}

func (kv *fakeKV) Keys(_ context.Context) ([]string, error) {
	kv.log.add("cache_invalidate")
	kv.mu.Lock()
	defer kv.mu.Unlock()
	keys := make([]string, 0, len(kv.data))
	for key := range kv.data {
		keys = append(keys, key)
	}
	return keys, nil
}

func (kv *fakeKV) has(key string) bool {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	_, ok := kv.data[key]
	return ok
}

// stubStore satisfies the engine's read side; the mutation flows under test
// never reach it.
type stubStore[T any] struct{}

func (stubStore[T]) FindByID(context.Context, string) (*T, error)   { return nil, nil }
func (stubStore[T]) FindMany(context.Context, cache.Query) ([]T, error) { return nil, nil }
func (stubStore[T]) Count(context.Context, string) (int64, error)   { return 0, nil }

// fakeWriter implements repository.DocumentWriter over maps, with error and
// match-result injection. Every mutation is logged for ordering assertions.
type fakeWriter[T any] struct {
	mu   sync.Mutex
	log  *eventLog
	name string

	docs  map[primitive.ObjectID]*T
	oneBy map[string]*T

	insertErr    error
	updateErr    error
	insertedID   primitive.ObjectID
	whereResults []bool
	whereFilters []bson.M
	whereUpdates []bson.M
	patches      []bson.M
}

func newFakeWriter[T any](log *eventLog, name string) *fakeWriter[T] {
	return &fakeWriter[T]{
		log:        log,
		name:       name,
		docs:       make(map[primitive.ObjectID]*T),
		oneBy:      make(map[string]*T),
		insertedID: primitive.NewObjectID(),
	}
}

func oneByKey(field string, value interface{}) string {
	return fmt.Sprintf("%s=%v", field, value)
}

func (w *fakeWriter[T]) seedOneBy(field string, value interface{}, doc *T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.oneBy[oneByKey(field, value)] = doc
}

func (w *fakeWriter[T]) Insert(_ context.Context, doc *T) (primitive.ObjectID, error) {
	if w.insertErr != nil {
		return primitive.NilObjectID, w.insertErr
	}
	w.log.add(w.name + "_insert")
	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[w.insertedID] = doc
	return w.insertedID, nil
}

func (w *fakeWriter[T]) Update(_ context.Context, id primitive.ObjectID, patch bson.M) (bool, error) {
	if w.updateErr != nil {
		return false, w.updateErr
	}
	w.log.add(w.name + "_update")
	w.mu.Lock()
	defer w.mu.Unlock()
	w.patches = append(w.patches, patch)
	_, ok := w.docs[id]
	return ok, nil
}

func (w *fakeWriter[T]) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	w.log.add(w.name + "_delete")
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.docs[id]
	delete(w.docs, id)
	return ok, nil
}

func (w *fakeWriter[T]) Get(_ context.Context, id primitive.ObjectID) (*T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.docs[id], nil
}

func (w *fakeWriter[T]) UpdateWhere(_ context.Context, filter, update bson.M) (bool, error) {
	w.log.add(w.name + "_update_where")
	w.mu.Lock()
	defer w.mu.Unlock()
	w.whereFilters = append(w.whereFilters, filter)
	w.whereUpdates = append(w.whereUpdates, update)
	if len(w.whereResults) == 0 {
		return true, nil
	}
	matched := w.whereResults[0]
	w.whereResults = w.whereResults[1:]
	return matched, nil
}

func (w *fakeWriter[T]) FindOneBy(_ context.Context, field string, value interface{}) (*T, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.oneBy[oneByKey(field, value)], nil
}

func (w *fakeWriter[T]) FindBy(context.Context, string, interface{}) ([]T, error) {
	return nil, nil
}

var errStoreDown = errors.New("store unavailable")
