package repository

import (
	"context"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/circuitbreaker"
)

// BreakerStore wraps a DocumentStore with circuit breaker protection. When
// the circuit is open, reads fail fast with ErrCircuitOpen, which the
// request path reports as a server error without waiting on Mongo timeouts.
type BreakerStore[T any] struct {
	store   *DocumentStore[T]
	breaker *circuitbreaker.CircuitBreaker
}

// NewBreakerStore wraps store with cb.
func NewBreakerStore[T any](store *DocumentStore[T], cb *circuitbreaker.CircuitBreaker) *BreakerStore[T] {
	return &BreakerStore[T]{store: store, breaker: cb}
}

// FindByID delegates under breaker protection.
func (b *BreakerStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var result *T
	err := b.breaker.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = b.store.FindByID(ctx, id)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindMany delegates under breaker protection.
func (b *BreakerStore[T]) FindMany(ctx context.Context, q cache.Query) ([]T, error) {
	var result []T
	err := b.breaker.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = b.store.FindMany(ctx, q)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Count delegates under breaker protection.
func (b *BreakerStore[T]) Count(ctx context.Context, searchBy string) (int64, error) {
	var result int64
	err := b.breaker.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = b.store.Count(ctx, searchBy)
		return innerErr
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}

// Breaker exposes the underlying breaker for health reporting.
func (b *BreakerStore[T]) Breaker() *circuitbreaker.CircuitBreaker {
	return b.breaker
}
