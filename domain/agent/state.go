package agent

// State identifies a phase of the question-answering loop.
type State string

const (
	// StateReasoning waits on the model for the next decision.
	StateReasoning State = "reasoning"
	// StateActing executes a tool call.
	StateActing State = "acting"
	// StateDone holds the final answer.
	StateDone State = "done"
	// StateFailed is entered when the loop cannot produce an answer.
	StateFailed State = "failed"
)

// IsTerminal reports whether the state ends the loop.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}
