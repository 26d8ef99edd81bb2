// Package agent holds the domain types for the structured chat agent:
// actions, observations, the transcript, and the output parser that
// turns raw model text into a typed decision.
package agent

// Action is a proposed tool invocation parsed from model output.
// Immutable once created.
type Action struct {
	// Tool is the registered capability name the model chose.
	Tool string

	// Input is the single free-text payload for the tool.
	Input string

	// Log is the raw model text the action was parsed from. It is
	// replayed verbatim when the scratchpad is rendered.
	Log string
}

// Observation is the string result of executing an Action.
type Observation string

// Step pairs an Action with the Observation produced by executing it.
type Step struct {
	Action      Action
	Observation Observation
}

// Finish is the terminal outcome of a question: the final answer text
// plus the raw model text it was parsed from.
type Finish struct {
	Answer string
	Log    string
}

// Decision is the typed outcome of parsing one model reply: either an
// action to execute or a finish. Exactly one of the two is set.
type Decision struct {
	Action *Action
	Finish *Finish
}

// IsFinish reports whether the decision terminates the session.
func (d Decision) IsFinish() bool {
	return d.Finish != nil
}
