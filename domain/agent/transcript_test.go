package agent

import (
	"strings"
	"testing"
)

func TestTranscript_Empty(t *testing.T) {
	t.Parallel()

	tr := NewTranscript()
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
	if tr.Scratchpad() != "" {
		t.Errorf("Scratchpad() = %q, want empty", tr.Scratchpad())
	}
}

func TestTranscript_Append(t *testing.T) {
	t.Parallel()

	tr := NewTranscript()
	action := Action{
		Tool:  "GraphDB",
		Input: "MATCH (d:Doctor) RETURN count(d)",
		Log:   "Thought: count doctors\nAction: GraphDB\nAction Input: MATCH (d:Doctor) RETURN count(d)",
	}
	tr.Append(action, Observation("[{count: 14}]"))

	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}

	steps := tr.Steps()
	if steps[0].Action.Tool != "GraphDB" {
		t.Errorf("step tool = %q", steps[0].Action.Tool)
	}
	if steps[0].Observation != "[{count: 14}]" {
		t.Errorf("step observation = %q", steps[0].Observation)
	}
}

func TestTranscript_StepsIsCopy(t *testing.T) {
	t.Parallel()

	tr := NewTranscript()
	tr.Append(Action{Tool: "GraphDB", Log: "Action: GraphDB\nAction Input: RETURN 1"}, "ok")

	steps := tr.Steps()
	steps[0].Observation = "mutated"

	if tr.Steps()[0].Observation != "ok" {
		t.Error("mutating the returned slice changed the transcript")
	}
}

func TestTranscript_Scratchpad(t *testing.T) {
	t.Parallel()

	tr := NewTranscript()
	tr.Append(Action{
		Tool:  "GraphDB",
		Input: "RETURN 1",
		Log:   "Thought: first\nAction: GraphDB\nAction Input: RETURN 1",
	}, "one")
	tr.Append(Action{
		Tool:  "GraphDB",
		Input: "RETURN 2",
		Log:   "Thought: second\nAction: GraphDB\nAction Input: RETURN 2",
	}, "two")

	pad := tr.Scratchpad()

	if !strings.HasPrefix(pad, "This was your previous work") {
		t.Errorf("Scratchpad() missing disclaimer prefix: %q", pad)
	}
	for _, want := range []string{
		"Thought: first",
		"Observation: one",
		"Thought: second",
		"Observation: two",
	} {
		if !strings.Contains(pad, want) {
			t.Errorf("Scratchpad() missing %q", want)
		}
	}
	if !strings.HasSuffix(pad, "Thought:") {
		t.Errorf("Scratchpad() should end with a Thought cue: %q", pad)
	}
	if strings.Index(pad, "Thought: first") > strings.Index(pad, "Thought: second") {
		t.Error("Scratchpad() renders steps out of order")
	}
}
