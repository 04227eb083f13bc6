// Package circuitbreaker implements the circuit breaker pattern used to
// shield request handling from a struggling MongoDB.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed passes requests through normally.
	StateClosed State = iota
	// StateOpen rejects requests immediately.
	StateOpen
	// StateHalfOpen lets test requests through after the open timeout.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker thresholds.
type Config struct {
	// FailureThreshold is the consecutive-failure count that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the consecutive-success count that closes it again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing half-open.
	Timeout time.Duration
	// Name appears in log lines.
	Name string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker tracks failures across calls and short-circuits once the
// threshold is crossed.
type CircuitBreaker struct {
	config      Config
	state       State
	failures    int
	successes   int
	lastFailure time.Time
	mu          sync.Mutex
}

// New creates a circuit breaker in the closed state.
func New(config Config) *CircuitBreaker {
	return &CircuitBreaker{config: config, state: StateClosed}
}

// Execute runs fn under breaker protection, returning ErrCircuitOpen
// without calling fn when the circuit is open.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	cb.mu.Lock()
	if cb.state == StateOpen {
		if time.Since(cb.lastFailure) < cb.config.Timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.successes = 0
		log.Info().Str("circuit_breaker", cb.config.Name).Msg("Circuit breaker half-open")
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.recordFailure()
		return err
	}
	cb.recordSuccess()
	return nil
}

// recordFailure must be called with the mutex held.
func (cb *CircuitBreaker) recordFailure() {
	cb.failures++
	cb.lastFailure = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failures >= cb.config.FailureThreshold {
			cb.state = StateOpen
			log.Warn().
				Str("circuit_breaker", cb.config.Name).
				Int("failures", cb.failures).
				Msg("Circuit breaker opened")
		}
	case StateHalfOpen:
		// A half-open probe failing reopens immediately.
		cb.state = StateOpen
		cb.failures = cb.config.FailureThreshold
		log.Warn().Str("circuit_breaker", cb.config.Name).Msg("Circuit breaker reopened")
	}
}

// recordSuccess must be called with the mutex held.
func (cb *CircuitBreaker) recordSuccess() {
	cb.failures = 0

	if cb.state == StateHalfOpen {
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successes = 0
			log.Info().Str("circuit_breaker", cb.config.Name).Msg("Circuit breaker closed")
		}
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Stats is a snapshot of the breaker for health reporting.
type Stats struct {
	State       string
	Failures    int
	LastFailure time.Time
	IsHealthy   bool
}

// GetStats returns a snapshot of the breaker.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return Stats{
		State:       cb.state.String(),
		Failures:    cb.failures,
		LastFailure: cb.lastFailure,
		IsHealthy:   cb.state == StateClosed,
	}
}
