package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Writer performs the mutation side of one collection. Reads go through the
// cache engine; writers exist so mutation handlers can insert, update, and
// delete with typed documents and trigger invalidation afterwards.
type Writer[T any] struct {
	coll *mongo.Collection
}

// NewWriter creates a writer over coll.
func NewWriter[T any](coll *mongo.Collection) *Writer[T] {
	return &Writer[T]{coll: coll}
}

// Insert stores a new document and returns its generated id.
func (w *Writer[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := w.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies a $set patch to the document with the given id and reports
// whether a document matched.
func (w *Writer[T]) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (bool, error) {
	res, err := w.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the document with the given id and reports whether it existed.
func (w *Writer[T]) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := w.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Get fetches a single document by id; nil when absent. Mutation flows use
// it to read back the fresh document for cache repopulation.
func (w *Writer[T]) Get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := w.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateWhere applies a raw update to the first document matching filter and
// reports whether one matched. Stock decrements use it with an $inc guarded
// by a minimum-stock filter so overselling loses the race atomically.
func (w *Writer[T]) UpdateWhere(ctx context.Context, filter, update bson.M) (bool, error) {
	res, err := w.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// FindOneBy fetches a single document matching field=value; nil when absent.
func (w *Writer[T]) FindOneBy(ctx context.Context, field string, value interface{}) (*T, error) {
	var doc T
	err := w.coll.FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindBy fetches all documents matching field=value, unpaginated. Used for
// narrow secondary lookups such as a product's reviews.
func (w *Writer[T]) FindBy(ctx context.Context, field string, value interface{}) ([]T, error) {
	cursor, err := w.coll.Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
