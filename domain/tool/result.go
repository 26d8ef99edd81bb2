package tool

import (
	"encoding/json"
	"time"
)

// Result contains the output of a tool execution.
type Result struct {
	// Output is the primary result data.
	Output json.RawMessage `json:"output"`

	// Duration is how long the execution took.
	Duration time.Duration `json:"duration"`
}

// NewResult creates a successful result with the given output.
func NewResult(output json.RawMessage) Result {
	return Result{Output: output}
}

// TextResult creates a result carrying plain text output.
func TextResult(text string) Result {
	raw, _ := json.Marshal(map[string]string{"content": text})
	return Result{Output: raw}
}

// OutputString returns the output as a string for convenience.
func (r Result) OutputString() string {
	return string(r.Output)
}

// Text extracts the "content" field from the output, falling back to
// the raw output when the field is absent.
func (r Result) Text() string {
	var wrapper struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(r.Output, &wrapper); err == nil && wrapper.Content != "" {
		return wrapper.Content
	}
	return string(r.Output)
}
