package agent

import (
	"errors"
	"testing"
)

func TestParser_FinalAnswer(t *testing.T) {
	t.Parallel()

	p := NewParser("GraphDB")

	t.Run("plain final answer", func(t *testing.T) {
		t.Parallel()

		text := "Thought: I now know the final answer\nFinal Answer: There are 14 doctors."
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if !d.IsFinish() {
			t.Fatal("Parse() decision is not a finish")
		}
		if d.Finish.Answer != "There are 14 doctors." {
			t.Errorf("Answer = %q", d.Finish.Answer)
		}
		if d.Finish.Log != text {
			t.Errorf("Log = %q, want raw reply", d.Finish.Log)
		}
	})

	t.Run("final answer wins over preceding action", func(t *testing.T) {
		t.Parallel()

		text := "Action: GraphDB\nAction Input: MATCH (d:Doctor) RETURN d\n" +
			"Final Answer: done anyway"
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if !d.IsFinish() {
			t.Fatal("Parse() decision is not a finish")
		}
		if d.Finish.Answer != "done anyway" {
			t.Errorf("Answer = %q, want done anyway", d.Finish.Answer)
		}
	})
}

func TestParser_Action(t *testing.T) {
	t.Parallel()

	p := NewParser("GraphDB")

	t.Run("plain text input", func(t *testing.T) {
		t.Parallel()

		text := "Thought: count the doctors\nAction: GraphDB\nAction Input: MATCH (d:Doctor) RETURN count(d)"
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if d.IsFinish() {
			t.Fatal("Parse() decision is a finish, want action")
		}
		if d.Action.Tool != "GraphDB" {
			t.Errorf("Tool = %q, want GraphDB", d.Action.Tool)
		}
		if d.Action.Input != "MATCH (d:Doctor) RETURN count(d)" {
			t.Errorf("Input = %q", d.Action.Input)
		}
		if d.Action.Log != text {
			t.Errorf("Log = %q, want raw reply", d.Action.Log)
		}
	})

	t.Run("json object input collapses to query", func(t *testing.T) {
		t.Parallel()

		text := "Action: GraphDB\nAction Input: {\"query\": \"MATCH (p:Patient) RETURN p\"}"
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if d.Action.Input != "MATCH (p:Patient) RETURN p" {
			t.Errorf("Input = %q", d.Action.Input)
		}
	})

	t.Run("fenced input is unwrapped", func(t *testing.T) {
		t.Parallel()

		text := "Action: GraphDB\nAction Input: ```\nMATCH (n) RETURN n\n```"
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if d.Action.Input != "MATCH (n) RETURN n" {
			t.Errorf("Input = %q", d.Action.Input)
		}
	})

	t.Run("fence language tag is stripped", func(t *testing.T) {
		t.Parallel()

		text := "Action: GraphDB\nAction Input: ```json\n{\"query\": \"MATCH (n) RETURN n\"}\n```"
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if d.Action.Input != "MATCH (n) RETURN n" {
			t.Errorf("Input = %q", d.Action.Input)
		}
	})

	t.Run("numbered action fields", func(t *testing.T) {
		t.Parallel()

		text := "Action 2: GraphDB\nAction 2 Input: RETURN 1"
		d, err := p.Parse(text)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if d.Action.Tool != "GraphDB" || d.Action.Input != "RETURN 1" {
			t.Errorf("Action = %+v", d.Action)
		}
	})
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()

	p := NewParser("GraphDB")

	t.Run("missing action", func(t *testing.T) {
		t.Parallel()

		_, err := p.Parse("I am thinking about doctors.")
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse() error = %T, want *ParseError", err)
		}
		if !errors.Is(err, ErrMissingAction) {
			t.Errorf("Parse() error = %v, want ErrMissingAction", err)
		}
		if pe.Raw != "I am thinking about doctors." {
			t.Errorf("Raw = %q", pe.Raw)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		t.Parallel()

		_, err := p.Parse("Action: WebSearch\nAction Input: doctors near me")
		if !errors.Is(err, ErrUnknownTool) {
			t.Errorf("Parse() error = %v, want ErrUnknownTool", err)
		}
	})

	t.Run("invalid json input", func(t *testing.T) {
		t.Parallel()

		_, err := p.Parse("Action: GraphDB\nAction Input: {\"query\": ")
		if !errors.Is(err, ErrInvalidActionInput) {
			t.Errorf("Parse() error = %v, want ErrInvalidActionInput", err)
		}
	})

	t.Run("no allow-list accepts any tool", func(t *testing.T) {
		t.Parallel()

		open := NewParser()
		d, err := open.Parse("Action: Anything\nAction Input: x")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if d.Action.Tool != "Anything" {
			t.Errorf("Tool = %q", d.Action.Tool)
		}
	})
}
