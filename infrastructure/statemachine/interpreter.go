package statemachine

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/medgraph-assistant/domain/agent"
)

// Interpreter wraps the statekit interpreter for one loop session.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates an interpreter bound to the given context.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{
		interp: interp,
		ctx:    ctx,
	}
}

// Start enters the initial state.
func (i *Interpreter) Start() {
	i.interp.Start()
	i.ctx.State = agent.State(i.interp.State().Value)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// State returns the current state.
func (i *Interpreter) State() agent.State {
	return agent.State(i.interp.State().Value)
}

// Steps returns the number of tool-call cycles taken so far.
func (i *Interpreter) Steps() int {
	return i.ctx.Steps
}

// Send dispatches an event. The machine ignores events with no
// matching transition, so the state is compared after the send to
// detect a refused transition (such as a tool call past the step cap).
func (i *Interpreter) Send(event statekit.EventType) error {
	before := i.State()
	i.interp.Send(statekit.Event{Type: event})
	after := agent.State(i.interp.State().Value)
	i.ctx.State = after
	if after == before && !before.IsTerminal() {
		return fmt.Errorf("event %s refused in state %s", event, before)
	}
	return nil
}

// IsTerminal returns true when the machine reached done or failed.
func (i *Interpreter) IsTerminal() bool {
	return i.interp.Done()
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}
