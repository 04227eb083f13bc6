package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentWriter defines the mutation surface of one collection. Services
// depend on it rather than on the mongo-backed Writer so the
// write-then-invalidate ordering can be tested with fakes.
type DocumentWriter[T any] interface {
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Get(ctx context.Context, id primitive.ObjectID) (*T, error)
	UpdateWhere(ctx context.Context, filter, update bson.M) (bool, error)
	FindOneBy(ctx context.Context, field string, value interface{}) (*T, error)
	FindBy(ctx context.Context, field string, value interface{}) ([]T, error)
}

var _ DocumentWriter[struct{}] = (*Writer[struct{}])(nil)
