//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	}
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())
	err := cb.Execute(context.Background(), func() error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(testConfig())
	storeErr := errors.New("server selection timeout")

	err := cb.Execute(context.Background(), func() error { return storeErr })
	assert.Equal(t, storeErr, err)
	assert.Equal(t, StateClosed, cb.State())

	err = cb.Execute(context.Background(), func() error { return storeErr })
	assert.Equal(t, storeErr, err)
	assert.Equal(t, StateOpen, cb.State())

	// Open circuit rejects without invoking the callback.
	called := false
	err = cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitOpen, err)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(testConfig())

	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	// First probe succeeds in half-open.
	err := cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	// Second success closes the circuit.
	err = cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())

	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errors.New("still down") })
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(testConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)

	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })

	stats = cb.GetStats()
	assert.Equal(t, "open", stats.State)
	assert.False(t, stats.IsHealthy)
}
