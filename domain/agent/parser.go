package agent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// finalAnswerMarker terminates a session. Everything after it is the
// answer text, even when the reply also contains action-like text.
const finalAnswerMarker = "Final Answer:"

// actionPattern matches the Action / Action Input fields of a reply.
// The model occasionally numbers the fields ("Action 2:"), which the
// optional digit group tolerates.
var actionPattern = regexp.MustCompile(
	`(?s)Action\s*\d*\s*:\s*(.*?)\s*Action\s*\d*\s*Input\s*\d*\s*:\s*(.*)`)

// Parser turns one raw model reply into a Decision. It enforces the
// reply grammar only; the allow-list it validates against is supplied
// by the agent at construction time from its tool registry.
type Parser struct {
	allowed map[string]struct{}
}

// NewParser creates a parser that accepts actions naming any of the
// given tools. An empty list disables tool-name validation.
func NewParser(toolNames ...string) *Parser {
	p := &Parser{}
	if len(toolNames) > 0 {
		p.allowed = make(map[string]struct{}, len(toolNames))
		for _, n := range toolNames {
			p.allowed[n] = struct{}{}
		}
	}
	return p
}

// Parse produces exactly one of {action, finish} or a *ParseError.
func (p *Parser) Parse(text string) (Decision, error) {
	// Final answer wins even when action-like text precedes it.
	if idx := strings.Index(text, finalAnswerMarker); idx >= 0 {
		answer := strings.TrimSpace(text[idx+len(finalAnswerMarker):])
		return Decision{Finish: &Finish{Answer: answer, Log: text}}, nil
	}

	m := actionPattern.FindStringSubmatch(text)
	if m == nil {
		return Decision{}, &ParseError{Raw: text, Err: ErrMissingAction}
	}

	name := strings.TrimSpace(m[1])
	input, err := normalizeInput(m[2])
	if err != nil {
		return Decision{}, &ParseError{Raw: text, Err: err}
	}

	if p.allowed != nil {
		if _, ok := p.allowed[name]; !ok {
			return Decision{}, &ParseError{
				Raw: text,
				Err: fmt.Errorf("%w: %q", ErrUnknownTool, name),
			}
		}
	}

	return Decision{Action: &Action{Tool: name, Input: input, Log: text}}, nil
}

// normalizeInput accepts either a plain-text payload or a JSON object.
// A JSON object with a single "query" string collapses to that string;
// anything brace-delimited that fails to decode is a parse failure.
func normalizeInput(raw string) (string, error) {
	input := strings.TrimSpace(raw)
	input = strings.TrimSuffix(input, "```")
	if rest, ok := strings.CutPrefix(input, "```"); ok {
		// A fence may carry a language tag on the opening line.
		rest = strings.TrimPrefix(rest, "json")
		input = rest
	}
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, "{") {
		return strings.Trim(input, `"`), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(input), &obj); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidActionInput, err)
	}
	if q, ok := obj["query"]; ok {
		var s string
		if err := json.Unmarshal(q, &s); err == nil {
			return s, nil
		}
	}
	return input, nil
}
