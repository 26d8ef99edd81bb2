package application_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/felixgeelhaar/medgraph-assistant/application"
	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
)

func promptTool(t *testing.T, name, desc string) tool.Tool {
	t.Helper()
	return tool.NewBuilder(name).
		WithDescription(desc).
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"query": json.RawMessage(`{"type": "string"}`),
		}, []string{"query"})).
		WithHandler(func(_ context.Context, _ json.RawMessage) (tool.Result, error) {
			return tool.Result{}, nil
		}).
		MustBuild()
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	graphDB := promptTool(t, "GraphDB", "Run a Cypher query against the medical Neo4j database")

	t.Run("section order is fixed", func(t *testing.T) {
		t.Parallel()

		p := application.BuildPrompt([]tool.Tool{graphDB})

		prefixIdx := strings.Index(p, "Respond to the human")
		toolsIdx := strings.Index(p, "GraphDB: Run a Cypher query")
		formatIdx := strings.Index(p, "Use the following format:")
		suffixIdx := strings.Index(p, "Begin!")

		for name, idx := range map[string]int{
			"prefix": prefixIdx, "tools": toolsIdx, "format": formatIdx, "suffix": suffixIdx,
		} {
			if idx < 0 {
				t.Fatalf("prompt missing %s section", name)
			}
		}
		if !(prefixIdx < toolsIdx && toolsIdx < formatIdx && formatIdx < suffixIdx) {
			t.Error("prompt sections out of order")
		}
	})

	t.Run("tool names fill the format slot", func(t *testing.T) {
		t.Parallel()

		second := promptTool(t, "Echo", "Echo input back")
		p := application.BuildPrompt([]tool.Tool{graphDB, second})

		if !strings.Contains(p, "must be one of [GraphDB, Echo]") {
			t.Errorf("prompt does not list tool names:\n%s", p)
		}
	})

	t.Run("schema reaches the model single-braced", func(t *testing.T) {
		t.Parallel()

		p := application.BuildPrompt([]tool.Tool{graphDB})

		if !strings.Contains(p, `args: {"`) {
			t.Errorf("tool line does not carry the raw schema:\n%s", p)
		}
		if strings.Contains(p, "{{") || strings.Contains(p, "}}") {
			t.Error("doubled braces leaked into the assembled prompt")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		tools := []tool.Tool{graphDB, promptTool(t, "Echo", "Echo input back")}
		if application.BuildPrompt(tools) != application.BuildPrompt(tools) {
			t.Error("BuildPrompt() is not byte-deterministic")
		}
	})
}
