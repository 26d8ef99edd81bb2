// Package resilience provides resilient tool execution using fortify.
package resilience

import (
	"context"
	"encoding/json"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"

	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
)

// Executor wraps tool execution with a timeout, a circuit breaker and
// retry for idempotent tools. The agent loop is sequential, so no
// concurrency limiting is applied.
type Executor struct {
	breaker circuitbreaker.CircuitBreaker[tool.Result]
	retry   retry.Retry[tool.Result]
	timeout time.Duration
}

// ExecutorConfig configures the resilient executor.
type ExecutorConfig struct {
	// CircuitBreakerThreshold is the number of consecutive failures
	// before opening.
	CircuitBreakerThreshold int

	// CircuitBreakerTimeout is how long the circuit stays open.
	CircuitBreakerTimeout time.Duration

	// RetryMaxAttempts is the maximum number of retry attempts.
	RetryMaxAttempts int

	// RetryInitialDelay is the initial delay between retries.
	RetryInitialDelay time.Duration

	// RetryBackoffMultiplier is the exponential backoff multiplier.
	RetryBackoffMultiplier float64

	// DefaultTimeout is the default execution timeout.
	DefaultTimeout time.Duration
}

// DefaultExecutorConfig returns a configuration with sensible defaults.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CircuitBreakerThreshold: 5,
		CircuitBreakerTimeout:   30 * time.Second,
		RetryMaxAttempts:        3,
		RetryInitialDelay:       100 * time.Millisecond,
		RetryBackoffMultiplier:  2.0,
		DefaultTimeout:          30 * time.Second,
	}
}

// NewExecutor creates a new resilient executor.
func NewExecutor(config ExecutorConfig) *Executor {
	threshold := config.CircuitBreakerThreshold
	if threshold < 0 {
		threshold = 5
	}

	return &Executor{
		breaker: circuitbreaker.New[tool.Result](circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    config.CircuitBreakerTimeout,
			Timeout:     config.CircuitBreakerTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(threshold) // #nosec G115 -- bounds checked above
			},
		}),
		retry: retry.New[tool.Result](retry.Config{
			MaxAttempts:   config.RetryMaxAttempts,
			InitialDelay:  config.RetryInitialDelay,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    config.RetryBackoffMultiplier,
		}),
		timeout: config.DefaultTimeout,
	}
}

// NewDefaultExecutor creates an executor with default configuration.
func NewDefaultExecutor() *Executor {
	return NewExecutor(DefaultExecutorConfig())
}

// Execute runs a tool with resilience patterns applied.
// Composition order: Timeout → Circuit Breaker → Retry (for idempotent)
func (e *Executor) Execute(ctx context.Context, t tool.Tool, input json.RawMessage) (tool.Result, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.breaker.Execute(ctx, func(ctx context.Context) (tool.Result, error) {
		if t.Annotations().CanRetry() {
			return e.retry.Do(ctx, func(ctx context.Context) (tool.Result, error) {
				return t.Execute(ctx, input)
			})
		}
		return t.Execute(ctx, input)
	})

	if err == nil {
		result.Duration = time.Since(start)
	}

	return result, err
}

// ExecuteWithTimeout runs a tool with a custom timeout.
func (e *Executor) ExecuteWithTimeout(ctx context.Context, t tool.Tool, input json.RawMessage, timeout time.Duration) (tool.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	result, err := e.breaker.Execute(ctx, func(ctx context.Context) (tool.Result, error) {
		if t.Annotations().CanRetry() {
			return e.retry.Do(ctx, func(ctx context.Context) (tool.Result, error) {
				return t.Execute(ctx, input)
			})
		}
		return t.Execute(ctx, input)
	})
	if err == nil {
		result.Duration = time.Since(start)
	}
	return result, err
}

// ExecuteSimple runs a tool without resilience patterns.
func (e *Executor) ExecuteSimple(ctx context.Context, t tool.Tool, input json.RawMessage) (tool.Result, error) {
	start := time.Now()
	result, err := t.Execute(ctx, input)
	if err == nil {
		result.Duration = time.Since(start)
	}
	return result, err
}

// CircuitBreakerState returns the current state of the circuit breaker.
func (e *Executor) CircuitBreakerState() circuitbreaker.State {
	return e.breaker.State()
}
