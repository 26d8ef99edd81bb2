package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/graph"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
)

// GraphDBToolName is the public identifier of the Cypher tool.
const GraphDBToolName = "GraphDB"

// graphDBDescription matches the server-side registration.
const graphDBDescription = "Run a Cypher query against the medical Neo4j database"

type graphDBArgs struct {
	Query string `json:"query"`
}

// GraphDBTool builds the client-side GraphDB tool over an MCP session.
// Quoted literals are lower-cased before dispatch; the server applies
// the same normalization, so either side alone is sufficient.
func GraphDBTool(client *Client) tool.Tool {
	return tool.NewBuilder(GraphDBToolName).
		WithDescription(graphDBDescription).
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"query": json.RawMessage(`{"type": "string", "description": "Cypher query to execute"}`),
		}, []string{"query"})).
		ReadOnly().
		Idempotent().
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			query, err := decodeQuery(input)
			if err != nil {
				return tool.Result{}, err
			}
			query = graph.LowercaseLiterals(query)

			args, err := json.Marshal(graphDBArgs{Query: query})
			if err != nil {
				return tool.Result{}, fmt.Errorf("marshal arguments: %w", err)
			}

			logging.Debug().
				Add(logging.Component("gateway")).
				Add(logging.ToolName(GraphDBToolName)).
				Msg("dispatching cypher query")

			result, err := client.CallTool(ctx, ToolCall{
				Name:      GraphDBToolName,
				Arguments: args,
			})
			if err != nil {
				return tool.Result{}, err
			}

			if len(result.Content) == 0 {
				return tool.TextResult(""), nil
			}
			// Server-side failures arrive as content text; they are
			// valid observations, not transport errors.
			return tool.TextResult(result.Content[0].Text), nil
		}).
		MustBuild()
}

// decodeQuery accepts either a bare JSON string or an object with a
// "query" field, mirroring the forms the model produces.
func decodeQuery(input json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(input, &s); err == nil {
		return s, nil
	}
	var args graphDBArgs
	if err := json.Unmarshal(input, &args); err != nil || args.Query == "" {
		return "", fmt.Errorf("invalid GraphDB input: %s", string(input))
	}
	return args.Query, nil
}
