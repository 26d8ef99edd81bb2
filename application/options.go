package application

import (
	"time"

	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/llm"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/resilience"
)

// Option configures the agent.
type Option func(*AgentConfig)

// WithProvider sets the model provider.
func WithProvider(p llm.Provider) Option {
	return func(c *AgentConfig) {
		c.Provider = p
	}
}

// WithRegistry sets the tool registry.
func WithRegistry(r tool.Registry) Option {
	return func(c *AgentConfig) {
		c.Registry = r
	}
}

// WithExecutor sets the resilient executor.
func WithExecutor(e *resilience.Executor) Option {
	return func(c *AgentConfig) {
		c.Executor = e
	}
}

// WithSliceText sets the domain prompt slice.
func WithSliceText(text string) Option {
	return func(c *AgentConfig) {
		c.SliceText = text
	}
}

// WithMaxSteps sets the reason-act cycle cap.
func WithMaxSteps(n int) Option {
	return func(c *AgentConfig) {
		c.MaxSteps = n
	}
}

// WithParseRetries sets the corrective re-prompt budget.
func WithParseRetries(n int) Option {
	return func(c *AgentConfig) {
		c.ParseRetries = n
	}
}

// WithModelTimeout bounds each completion call.
func WithModelTimeout(d time.Duration) Option {
	return func(c *AgentConfig) {
		c.ModelTimeout = d
	}
}

// WithToolTimeout bounds each tool execution.
func WithToolTimeout(d time.Duration) Option {
	return func(c *AgentConfig) {
		c.ToolTimeout = d
	}
}

// NewAgentWithOptions creates an agent using functional options.
func NewAgentWithOptions(opts ...Option) (*Agent, error) {
	config := AgentConfig{}
	for _, opt := range opts {
		opt(&config)
	}
	return NewAgent(config)
}
