// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ecomly/ecomly-api/config"
	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/circuitbreaker"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/repository"
)

// DatabaseComponents holds database-related components. Each collection gets
// its own circuit-breaker-wrapped read store plus a plain writer; writes go
// straight to MongoDB so a tripped breaker never drops a confirmed write.
type DatabaseComponents struct {
	Mongo   *repository.MongoDB
	RedisKV *cache.RedisKV

	StaffStore    *repository.BreakerStore[model.Staff]
	UserStore     *repository.BreakerStore[model.User]
	CategoryStore *repository.BreakerStore[model.Category]
	ProductStore  *repository.BreakerStore[model.Product]
	OrderStore    *repository.BreakerStore[model.Order]
	ReviewStore   *repository.BreakerStore[model.Review]

	StaffWriter    *repository.Writer[model.Staff]
	UserWriter     *repository.Writer[model.User]
	CategoryWriter *repository.Writer[model.Category]
	ProductWriter  *repository.Writer[model.Product]
	OrderWriter    *repository.Writer[model.Order]
	ReviewWriter   *repository.Writer[model.Review]

	TokenRepo repository.TokenRepositoryInterface

	MongoCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB and Redis connections and
// creates the per-collection stores and writers.
func InitializeDatabase(dbCfg config.DatabaseConfig, redisCfg config.RedisConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(dbCfg.URI, dbCfg.DatabaseName)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", dbCfg.DatabaseName).Msg("Connected to MongoDB")

	kv, err := cache.NewRedisKV(cache.RedisConfig{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", redisCfg.Addr).Msg("Connected to Redis")

	mongoCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: dbCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: dbCfg.CircuitBreakerSuccessThreshold,
		Timeout:          dbCfg.CircuitBreakerTimeout,
		Name:             "mongodb",
	})

	return &DatabaseComponents{
		Mongo:   db,
		RedisKV: kv,

		StaffStore:    repository.NewBreakerStore(repository.NewDocumentStore[model.Staff](db.Staffs, "name"), mongoCB),
		UserStore:     repository.NewBreakerStore(repository.NewDocumentStore[model.User](db.Users, "name"), mongoCB),
		CategoryStore: repository.NewBreakerStore(repository.NewDocumentStore[model.Category](db.Categories, "name"), mongoCB),
		ProductStore:  repository.NewBreakerStore(repository.NewDocumentStore[model.Product](db.Products, "name"), mongoCB),
		OrderStore:    repository.NewBreakerStore(repository.NewDocumentStore[model.Order](db.Orders, ""), mongoCB),
		ReviewStore:   repository.NewBreakerStore(repository.NewDocumentStore[model.Review](db.Reviews, "comment"), mongoCB),

		StaffWriter:    repository.NewWriter[model.Staff](db.Staffs),
		UserWriter:     repository.NewWriter[model.User](db.Users),
		CategoryWriter: repository.NewWriter[model.Category](db.Categories),
		ProductWriter:  repository.NewWriter[model.Product](db.Products),
		OrderWriter:    repository.NewWriter[model.Order](db.Orders),
		ReviewWriter:   repository.NewWriter[model.Review](db.Reviews),

		TokenRepo: repository.NewTokenRepository(db.Database),

		MongoCircuitBreaker: mongoCB,
	}, nil
}
