// Package application orchestrates the question-answering loop: prompt
// assembly, the reason-act-observe cycle, and prompt slice resolution.
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/medgraph-assistant/domain/agent"
	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/llm"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/resilience"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/statemachine"
)

const (
	// DefaultMaxSteps caps reason-act cycles per question.
	DefaultMaxSteps = 12

	// DefaultParseRetries is the corrective re-prompt budget per
	// reasoning turn.
	DefaultParseRetries = 1

	// DefaultModelTimeout bounds one completion call. Every
	// suspension point carries a timeout; the model call is no
	// exception.
	DefaultModelTimeout = 60 * time.Second
)

// Terminal answers produced when the loop gives up. They are answers,
// not errors: the session ends cleanly and the user sees why.
const (
	maxStepsAnswer  = "Agent stopped: max iterations reached before a final answer was produced."
	badFormatAnswer = "Agent stopped: the model repeatedly produced replies in an invalid format."
)

// stopSequences cut the model off before it hallucinates observations.
var stopSequences = []string{"\nObservation:", "Observation:"}

// Agent runs the structured chat loop for one domain slice. Sessions
// are strictly sequential; a single Agent must not be driven from
// multiple goroutines at once.
type Agent struct {
	provider llm.Provider
	registry tool.Registry
	executor *resilience.Executor
	parser   *agent.Parser

	sliceText    string
	systemPrompt string
	toolNames    []string

	maxSteps     int
	parseRetries int
	modelTimeout time.Duration
	toolTimeout  time.Duration
}

// AgentConfig contains configuration for the agent.
type AgentConfig struct {
	// Provider produces model completions.
	Provider llm.Provider

	// Registry holds the tools advertised in the prompt.
	Registry tool.Registry

	// Executor wraps tool execution with resilience policies.
	Executor *resilience.Executor

	// SliceText is the domain prompt slice with the question
	// placeholder still in place.
	SliceText string

	// MaxSteps caps reason-act cycles. Zero means DefaultMaxSteps.
	MaxSteps int

	// ParseRetries is the corrective re-prompt budget. Negative
	// disables retries; zero means DefaultParseRetries.
	ParseRetries int

	// ModelTimeout bounds one completion call. Negative disables the
	// bound; zero means DefaultModelTimeout.
	ModelTimeout time.Duration

	// ToolTimeout bounds one tool execution, overriding the
	// executor's default. Zero keeps the executor's own bound.
	ToolTimeout time.Duration
}

// NewAgent creates an agent with the given configuration.
func NewAgent(config AgentConfig) (*Agent, error) {
	if config.Provider == nil {
		return nil, errors.New("provider is required")
	}
	if config.Registry == nil {
		return nil, errors.New("registry is required")
	}
	if len(config.Registry.Names()) == 0 {
		return nil, errors.New("registry has no tools")
	}

	a := &Agent{
		provider:     config.Provider,
		registry:     config.Registry,
		executor:     config.Executor,
		sliceText:    config.SliceText,
		toolNames:    config.Registry.Names(),
		maxSteps:     config.MaxSteps,
		parseRetries: config.ParseRetries,
		modelTimeout: config.ModelTimeout,
		toolTimeout:  config.ToolTimeout,
	}

	if a.executor == nil {
		a.executor = resilience.NewDefaultExecutor()
	}
	if a.maxSteps == 0 {
		a.maxSteps = DefaultMaxSteps
	}
	if a.parseRetries == 0 {
		a.parseRetries = DefaultParseRetries
	}
	if a.parseRetries < 0 {
		a.parseRetries = 0
	}
	if a.modelTimeout == 0 {
		a.modelTimeout = DefaultModelTimeout
	}
	if a.modelTimeout < 0 {
		a.modelTimeout = 0
	}

	a.parser = agent.NewParser(a.toolNames...)
	a.systemPrompt = BuildPrompt(config.Registry.List())

	return a, nil
}

// Answer runs the loop for one question and returns the final answer.
// Loop exhaustion and formatting failures come back as answers, not
// errors; an error means the model or the context gave out.
func (a *Agent) Answer(ctx context.Context, question string) (string, error) {
	sessionID := uuid.NewString()
	questionText := a.renderQuestion(question)
	transcript := agent.NewTranscript()

	machine, err := statemachine.NewLoopMachine()
	if err != nil {
		return "", fmt.Errorf("create loop machine: %w", err)
	}
	mctx := statemachine.NewContext(sessionID, a.maxSteps)
	interp := statemachine.NewInterpreter(machine, mctx)
	interp.Start()
	defer interp.Stop()

	logging.Info().
		Add(logging.SessionID(sessionID)).
		Add(logging.Component("agent")).
		Msg("session started")

	for {
		if err := ctx.Err(); err != nil {
			_ = interp.Send(statemachine.EventFail)
			return "", err
		}

		decision, err := a.decide(ctx, sessionID, questionText, transcript)
		if err != nil {
			var parseErr *agent.ParseError
			if errors.As(err, &parseErr) {
				_ = interp.Send(statemachine.EventFail)
				logging.Warn().
					Add(logging.SessionID(sessionID)).
					Add(logging.ErrorField(err)).
					Msg("retry budget exhausted")
				return badFormatAnswer, nil
			}
			_ = interp.Send(statemachine.EventFail)
			return "", err
		}

		if decision.IsFinish() {
			_ = interp.Send(statemachine.EventDone)
			logging.Info().
				Add(logging.SessionID(sessionID)).
				Add(logging.Step(interp.Steps())).
				Msg("session finished")
			return decision.Finish.Answer, nil
		}

		// The guard refuses the transition once the step cap is hit.
		if err := interp.Send(statemachine.EventAct); err != nil {
			_ = interp.Send(statemachine.EventFail)
			logging.Warn().
				Add(logging.SessionID(sessionID)).
				Add(logging.Step(interp.Steps())).
				Msg("iteration limit reached")
			return maxStepsAnswer, nil
		}

		obs := a.act(ctx, sessionID, interp.Steps(), *decision.Action)
		transcript.Append(*decision.Action, obs)

		if err := interp.Send(statemachine.EventObserve); err != nil {
			_ = interp.Send(statemachine.EventFail)
			return "", err
		}
	}
}

// renderQuestion substitutes the question into the slice text and
// appends it once more in plain form.
func (a *Agent) renderQuestion(question string) string {
	if a.sliceText == "" {
		return question
	}
	rendered := prompt.Render(a.sliceText, question)
	return rendered + "\nUser question: " + question
}

// decide runs one reasoning turn: completion, parse, and bounded
// corrective re-prompts on parse failure.
func (a *Agent) decide(ctx context.Context, sessionID, questionText string, transcript *agent.Transcript) (agent.Decision, error) {
	user := fmt.Sprintf(prompt.HumanMessageTemplate, questionText, transcript.Scratchpad())

	reply, err := a.complete(ctx, user)
	if err != nil {
		return agent.Decision{}, err
	}

	for attempt := 0; ; attempt++ {
		decision, parseErr := a.parser.Parse(reply)
		if parseErr == nil {
			return decision, nil
		}
		if attempt >= a.parseRetries {
			return agent.Decision{}, parseErr
		}

		logging.Warn().
			Add(logging.SessionID(sessionID)).
			Add(logging.Retries(attempt+1)).
			Add(logging.ErrorField(parseErr)).
			Msg("reply unparsable, sending corrective re-prompt")

		var pe *agent.ParseError
		raw := reply
		if errors.As(parseErr, &pe) {
			raw = pe.Raw
		}
		corrective := fmt.Sprintf(prompt.CorrectiveTemplate, raw, strings.Join(a.toolNames, ", "))
		reply, err = a.complete(ctx, corrective)
		if err != nil {
			return agent.Decision{}, err
		}
	}
}

func (a *Agent) complete(ctx context.Context, user string) (string, error) {
	if a.modelTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.modelTimeout)
		defer cancel()
	}
	return a.provider.Complete(ctx, llm.Request{
		System: a.systemPrompt,
		User:   user,
		Stop:   stopSequences,
	})
}

// act executes one action. Failures become observation text so the
// model can self-correct; nothing here aborts the session.
func (a *Agent) act(ctx context.Context, sessionID string, step int, action agent.Action) agent.Observation {
	t, ok := a.registry.Get(action.Tool)
	if !ok {
		return agent.Observation(fmt.Sprintf(
			"%s is not a valid tool, try one of [%s].",
			action.Tool, strings.Join(a.toolNames, ", ")))
	}

	input, err := json.Marshal(action.Input)
	if err != nil {
		return agent.Observation(fmt.Sprintf("Error: %v", err))
	}

	start := time.Now()
	var result tool.Result
	if a.toolTimeout > 0 {
		result, err = a.executor.ExecuteWithTimeout(ctx, t, input, a.toolTimeout)
	} else {
		result, err = a.executor.Execute(ctx, t, input)
	}

	event := logging.Debug()
	if err != nil {
		event = logging.Warn()
	}
	event.
		Add(logging.SessionID(sessionID)).
		Add(logging.Step(step)).
		Add(logging.ToolName(action.Tool)).
		Add(logging.Duration(time.Since(start))).
		Add(logging.ErrorField(err)).
		Msg("tool executed")

	if err != nil {
		return agent.Observation(fmt.Sprintf("Error: %v", err))
	}
	return agent.Observation(result.Text())
}
