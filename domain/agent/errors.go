package agent

import (
	"errors"
	"fmt"
)

// Domain errors for the agent loop.
var (
	// ErrMissingAction indicates the reply contained neither a final
	// answer marker nor an Action/Action Input pair.
	ErrMissingAction = errors.New("reply contains no action and no final answer")

	// ErrInvalidActionInput indicates the Action Input payload looked
	// like JSON but could not be decoded.
	ErrInvalidActionInput = errors.New("action input is not valid JSON")

	// ErrUnknownTool indicates the parsed action names a tool outside
	// the registered set.
	ErrUnknownTool = errors.New("action names an unregistered tool")

	// ErrMaxSteps indicates the loop hit its iteration cap before the
	// model produced a final answer.
	ErrMaxSteps = errors.New("max iterations reached")
)

// ParseError wraps a parsing failure together with the raw model text
// that caused it, so a corrective re-prompt can quote it back.
type ParseError struct {
	// Raw is the model output that failed to parse.
	Raw string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse model output: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
