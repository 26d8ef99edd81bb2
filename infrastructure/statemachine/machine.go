// Package statemachine provides the statekit statechart for the
// question-answering loop.
package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/medgraph-assistant/domain/agent"
)

// Context carries loop state through the machine.
type Context struct {
	SessionID string
	State     agent.State
	Steps     int
	MaxSteps  int
}

// NewContext creates a machine context for one session.
func NewContext(sessionID string, maxSteps int) *Context {
	return &Context{
		SessionID: sessionID,
		State:     agent.StateReasoning,
		MaxSteps:  maxSteps,
	}
}

const (
	stateReasoning statekit.StateID = statekit.StateID(agent.StateReasoning)
	stateActing    statekit.StateID = statekit.StateID(agent.StateActing)
	stateDone      statekit.StateID = statekit.StateID(agent.StateDone)
	stateFailed    statekit.StateID = statekit.StateID(agent.StateFailed)
)

// Event types accepted by the machine.
const (
	EventAct     statekit.EventType = "ACT"
	EventObserve statekit.EventType = "OBSERVE"
	EventDone    statekit.EventType = "DONE"
	EventFail    statekit.EventType = "FAIL"
)

// NewLoopMachine creates the loop statechart. Reasoning may move to
// acting (tool call), done (final answer) or failed; acting always
// returns to reasoning with an observation, or fails.
func NewLoopMachine() (*statekit.MachineConfig[*Context], error) {
	return statekit.NewMachine[*Context]("loop").
		WithInitial(stateReasoning).
		WithContext(&Context{}).
		WithAction("recordState", recordState).
		WithAction("countStep", countStep).
		WithGuard("stepsRemaining", guardStepsRemaining).
		State(stateReasoning).
			On(EventAct).Target(stateActing).Guard("stepsRemaining").Do("countStep").Do("recordState").
			On(EventDone).Target(stateDone).Do("recordState").
			On(EventFail).Target(stateFailed).Do("recordState").
			Done().
		State(stateActing).
			On(EventObserve).Target(stateReasoning).Do("recordState").
			On(EventFail).Target(stateFailed).Do("recordState").
			Done().
		State(stateDone).
			Final().
			Done().
		State(stateFailed).
			Final().
			Done().
		Build()
}

// recordState mirrors the machine state into the context.
func recordState(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).State = stateFromEventType(event.Type)
}

// countStep increments the reasoning cycle counter on each tool call.
func countStep(ctx **Context, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).Steps++
}

// guardStepsRemaining blocks further tool calls once the step cap is
// reached.
func guardStepsRemaining(ctx *Context, _ statekit.Event) bool {
	if ctx == nil || ctx.MaxSteps <= 0 {
		return true
	}
	return ctx.Steps < ctx.MaxSteps
}

func stateFromEventType(eventType statekit.EventType) agent.State {
	switch eventType {
	case EventAct:
		return agent.StateActing
	case EventObserve:
		return agent.StateReasoning
	case EventDone:
		return agent.StateDone
	case EventFail:
		return agent.StateFailed
	default:
		return agent.State(eventType)
	}
}
