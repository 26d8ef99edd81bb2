package resilience

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
)

// mockTool implements tool.Tool for testing.
type mockTool struct {
	name        string
	annotations tool.Annotations
	handler     func(context.Context, json.RawMessage) (tool.Result, error)
}

func (m *mockTool) Name() string                  { return m.name }
func (m *mockTool) Description() string           { return "Mock tool" }
func (m *mockTool) InputSchema() tool.Schema      { return tool.Schema{} }
func (m *mockTool) Annotations() tool.Annotations { return m.annotations }
func (m *mockTool) Execute(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	if m.handler != nil {
		return m.handler(ctx, input)
	}
	return tool.Result{Output: json.RawMessage(`{"success": true}`)}, nil
}

func TestDefaultExecutorConfig(t *testing.T) {
	config := DefaultExecutorConfig()

	if config.CircuitBreakerThreshold != 5 {
		t.Errorf("CircuitBreakerThreshold = %d, want 5", config.CircuitBreakerThreshold)
	}
	if config.RetryMaxAttempts != 3 {
		t.Errorf("RetryMaxAttempts = %d, want 3", config.RetryMaxAttempts)
	}
	if config.DefaultTimeout != 30*time.Second {
		t.Errorf("DefaultTimeout = %v, want 30s", config.DefaultTimeout)
	}
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("successful execution", func(t *testing.T) {
		executor := NewDefaultExecutor()
		mock := &mockTool{name: "test"}

		result, err := executor.Execute(context.Background(), mock, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if string(result.Output) != `{"success": true}` {
			t.Errorf("Output = %s", result.Output)
		}
		if result.Duration == 0 {
			t.Error("Duration not recorded")
		}
	})

	t.Run("error from non-retryable tool not retried", func(t *testing.T) {
		calls := 0
		mock := &mockTool{
			name: "mutating",
			handler: func(_ context.Context, _ json.RawMessage) (tool.Result, error) {
				calls++
				return tool.Result{}, errors.New("backend down")
			},
		}
		executor := NewDefaultExecutor()

		_, err := executor.Execute(context.Background(), mock, nil)
		if err == nil {
			t.Fatal("Execute() error = nil, want error")
		}
		if calls != 1 {
			t.Errorf("tool called %d times, want 1", calls)
		}
	})

	t.Run("idempotent tool retried", func(t *testing.T) {
		calls := 0
		mock := &mockTool{
			name:        "readonly",
			annotations: tool.Annotations{ReadOnly: true, Idempotent: true},
			handler: func(_ context.Context, _ json.RawMessage) (tool.Result, error) {
				calls++
				if calls < 2 {
					return tool.Result{}, errors.New("transient")
				}
				return tool.TextResult("ok"), nil
			},
		}
		executor := NewExecutor(ExecutorConfig{
			CircuitBreakerThreshold: 5,
			CircuitBreakerTimeout:   time.Second,
			RetryMaxAttempts:        3,
			RetryInitialDelay:       time.Millisecond,
			RetryBackoffMultiplier:  2.0,
			DefaultTimeout:          time.Second,
		})

		result, err := executor.Execute(context.Background(), mock, nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Text() != "ok" {
			t.Errorf("result text = %q", result.Text())
		}
		if calls != 2 {
			t.Errorf("tool called %d times, want 2", calls)
		}
	})

	t.Run("timeout bounds execution", func(t *testing.T) {
		mock := &mockTool{
			name: "slow",
			handler: func(ctx context.Context, _ json.RawMessage) (tool.Result, error) {
				select {
				case <-time.After(5 * time.Second):
					return tool.TextResult("too late"), nil
				case <-ctx.Done():
					return tool.Result{}, ctx.Err()
				}
			},
		}
		executor := NewExecutorWithOptions(WithTimeout(20 * time.Millisecond))

		start := time.Now()
		_, err := executor.Execute(context.Background(), mock, nil)
		if err == nil {
			t.Fatal("Execute() error = nil, want timeout")
		}
		if time.Since(start) > time.Second {
			t.Error("Execute() did not respect the timeout")
		}
	})
}

func TestExecutor_ExecuteWithTimeout(t *testing.T) {
	t.Run("override bounds a slow tool", func(t *testing.T) {
		mock := &mockTool{
			name: "slow",
			handler: func(ctx context.Context, _ json.RawMessage) (tool.Result, error) {
				select {
				case <-time.After(5 * time.Second):
					return tool.TextResult("too late"), nil
				case <-ctx.Done():
					return tool.Result{}, ctx.Err()
				}
			},
		}
		executor := NewDefaultExecutor()

		start := time.Now()
		_, err := executor.ExecuteWithTimeout(context.Background(), mock, nil, 20*time.Millisecond)
		if err == nil {
			t.Fatal("ExecuteWithTimeout() error = nil, want timeout")
		}
		if time.Since(start) > time.Second {
			t.Error("ExecuteWithTimeout() did not respect the override")
		}
	})

	t.Run("fast tool unaffected", func(t *testing.T) {
		mock := &mockTool{name: "fast"}
		executor := NewDefaultExecutor()

		result, err := executor.ExecuteWithTimeout(context.Background(), mock, nil, time.Second)
		if err != nil {
			t.Fatalf("ExecuteWithTimeout() error = %v", err)
		}
		if result.Duration == 0 {
			t.Error("Duration not recorded")
		}
	})
}

func TestExecutor_ExecuteSimple(t *testing.T) {
	executor := NewDefaultExecutor()
	mock := &mockTool{name: "test"}

	result, err := executor.ExecuteSimple(context.Background(), mock, nil)
	if err != nil {
		t.Fatalf("ExecuteSimple() error = %v", err)
	}
	if string(result.Output) != `{"success": true}` {
		t.Errorf("Output = %s", result.Output)
	}
}

func TestExecutor_CircuitBreakerState(t *testing.T) {
	executor := NewDefaultExecutor()

	// A fresh breaker is closed.
	state := executor.CircuitBreakerState()
	if state.String() != "closed" {
		t.Errorf("Initial CircuitBreakerState() = %v, want closed", state)
	}
}
