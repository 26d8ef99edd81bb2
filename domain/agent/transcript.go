package agent

import "strings"

// scratchpadDisclaimer precedes the rendered steps so the model treats
// them as this session's recorded work, not persistent memory.
const scratchpadDisclaimer = "This was your previous work " +
	"(but I haven't seen any of it! I only see what " +
	"you return as final answer):\n"

// Transcript is the ordered history of steps taken for one question.
// It is mutated only by appending and lives for a single session.
type Transcript struct {
	steps []Step
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append records a completed step. Every appended Action carries its
// Observation, so the transcript never holds an orphaned action.
func (t *Transcript) Append(action Action, obs Observation) {
	t.steps = append(t.steps, Step{Action: action, Observation: obs})
}

// Steps returns a copy of the recorded steps in execution order.
func (t *Transcript) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// Len returns the number of recorded steps.
func (t *Transcript) Len() int {
	return len(t.steps)
}

// Scratchpad renders the transcript as the Thought/Action/Action
// Input/Observation block fed back to the model. Rendering is a pure
// function of the recorded steps; an empty transcript renders empty.
func (t *Transcript) Scratchpad() string {
	if len(t.steps) == 0 {
		return ""
	}

	var b strings.Builder
	for _, s := range t.steps {
		b.WriteString(s.Action.Log)
		b.WriteString("\nObservation: ")
		b.WriteString(string(s.Observation))
		b.WriteString("\nThought:")
	}
	return scratchpadDisclaimer + b.String()
}
