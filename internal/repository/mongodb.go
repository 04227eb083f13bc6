// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollStaffs     = "staffs"
	CollUsers      = "users"
	CollCategories = "categories"
	CollProducts   = "products"
	CollOrders     = "orders"
	CollReviews    = "reviews"
	CollTokens     = "tokens"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
}

// DefaultMongoConfig returns production defaults.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
	}
}

// MongoDB owns the client and exposes the typed collections. One instance
// per process, created at startup.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database

	Staffs     *mongo.Collection
	Users      *mongo.Collection
	Categories *mongo.Collection
	Products   *mongo.Collection
	Orders     *mongo.Collection
	Reviews    *mongo.Collection
	Tokens     *mongo.Collection
}

// NewMongoDB connects with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings, and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:     client,
		Database:   db,
		Staffs:     db.Collection(CollStaffs),
		Users:      db.Collection(CollUsers),
		Categories: db.Collection(CollCategories),
		Products:   db.Collection(CollProducts),
		Orders:     db.Collection(CollOrders),
		Reviews:    db.Collection(CollReviews),
		Tokens:     db.Collection(CollTokens),
	}

	if err := m.createIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// createIndexes ensures the indexes the query paths rely on. Existing
// indexes are left alone; creation errors for duplicates are ignored.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Staffs.Indexes().CreateOne(ctx, uniqueEmail)
	_, _ = m.Users.Indexes().CreateOne(ctx, uniqueEmail)

	nameSlug := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "slug", Value: 1}, {Key: "status", Value: 1}},
	}
	_, _ = m.Categories.Indexes().CreateOne(ctx, nameSlug)
	_, _ = m.Products.Indexes().CreateOne(ctx, nameSlug)

	productCategory := mongo.IndexModel{
		Keys: bson.D{{Key: "category_id", Value: 1}},
	}
	_, _ = m.Products.Indexes().CreateOne(ctx, productCategory)

	orderUser := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}},
	}
	_, _ = m.Orders.Indexes().CreateOne(ctx, orderUser)

	reviewProduct := mongo.IndexModel{
		Keys: bson.D{{Key: "product_id", Value: 1}},
	}
	_, _ = m.Reviews.Indexes().CreateOne(ctx, reviewProduct)

	uniqueToken := mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, uniqueToken)

	// Expired tokens are removed by the server itself.
	tokenTTL := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, tokenTTL)

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
