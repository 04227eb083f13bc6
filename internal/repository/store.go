package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/metrics"
)

// DocumentStore adapts one MongoDB collection to the cache engine's Store
// interface. Collection reads run as an aggregation (sort, match, skip,
// limit) mirroring how listings are partitioned: a case-insensitive regex
// on the search field plus an optional status match.
type DocumentStore[T any] struct {
	coll *mongo.Collection
	// searchField is the document field matched by search_by queries;
	// empty disables text filtering for this collection.
	searchField string
}

// NewDocumentStore creates a store over coll that searches searchField.
func NewDocumentStore[T any](coll *mongo.Collection, searchField string) *DocumentStore[T] {
	return &DocumentStore[T]{coll: coll, searchField: searchField}
}

// FindByID returns the document with the given hex id, or nil when absent.
func (s *DocumentStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Shape validation happens upstream; a malformed id here is a bug,
		// not a user error.
		return nil, fmt.Errorf("parsing object id %q: %w", id, err)
	}

	start := time.Now()
	var doc T
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "not_found")
		return nil, nil
	}
	if err != nil {
		metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "error")
		return nil, err
	}
	metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "success")
	return &doc, nil
}

// FindMany returns one page of the collection. An empty slice is a valid
// zero-match result, not an error.
func (s *DocumentStore[T]) FindMany(ctx context.Context, q cache.Query) ([]T, error) {
	sortOrder := 1
	if q.SortType == cache.SortDsc {
		sortOrder = -1
	}

	match := bson.M{}
	if q.SearchBy != "" && s.searchField != "" {
		match[s.searchField] = bson.M{"$regex": q.SearchBy, "$options": "i"}
	}
	if q.Status != "" && q.Status != cache.StatusAll {
		match["status"] = string(q.Status)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: sortOrder}}}},
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$skip", Value: q.Skip}},
		bson.D{{Key: "$limit", Value: q.Limit}},
	}

	start := time.Now()
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "error")
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "error")
		return nil, err
	}
	metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "success")
	return docs, nil
}

// Count returns the number of documents matching the search term across the
// whole collection. It runs on every collection read, cache hit or not.
func (s *DocumentStore[T]) Count(ctx context.Context, searchBy string) (int64, error) {
	filter := bson.M{}
	if searchBy != "" && s.searchField != "" {
		filter[s.searchField] = bson.M{"$regex": searchBy, "$options": "i"}
	}

	start := time.Now()
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "error")
		return 0, err
	}
	metrics.RecordStoreQuery(s.coll.Name(), time.Since(start), "success")
	return n, nil
}
