// Package llm provides chat model providers for the reasoning loop.
package llm

import "context"

// Request is a single completion request. System carries the
// assembled instruction prompt, User the question plus scratchpad.
type Request struct {
	System string
	User   string

	// Stop sequences cut the model off before it fabricates an
	// observation.
	Stop []string

	Temperature *float64
}

// Provider produces the model's next reply text.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}
