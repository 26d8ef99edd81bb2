package graph

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/config"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
)

// Executor owns the Neo4j driver and runs Cypher queries for the
// GraphDB tool.
type Executor struct {
	driver neo4j.DriverWithContext
}

// NewExecutor opens a driver and verifies connectivity.
func NewExecutor(ctx context.Context, cfg config.Neo4jConfig) (*Executor, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("open neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	logging.Info().
		Add(logging.Component("graph")).
		Add(logging.Str("uri", cfg.URI)).
		Msg("connected to neo4j")

	return &Executor{driver: driver}, nil
}

// Close releases the driver.
func (e *Executor) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// Run lower-cases quoted literals, executes the query and renders the
// result as text. A failed query becomes error text, not an error
// value: the caller feeds it back to the model as an observation.
func (e *Executor) Run(ctx context.Context, query string) string {
	query = LowercaseLiterals(query)

	result, err := neo4j.ExecuteQuery(ctx, e.driver, query, nil,
		neo4j.EagerResultTransformer)
	if err != nil {
		logging.Warn().
			Add(logging.Component("graph")).
			Add(logging.ErrorField(err)).
			Msg("cypher query failed")
		return fmt.Sprintf("Error executing Cypher: %v", err)
	}

	logging.Debug().
		Add(logging.Component("graph")).
		Add(logging.Rows(len(result.Records))).
		Msg("cypher query executed")

	return RenderRecords(result.Records)
}

// RenderRecords renders eager result records as text for the model.
// Empty sets render as "No results returned." so the model can tell
// an empty answer from a transport failure.
func RenderRecords(records []*neo4j.Record) string {
	if len(records) == 0 {
		return "No results returned."
	}

	rows := make([]string, 0, len(records))
	for _, rec := range records {
		fields := make([]string, 0, len(rec.Keys))
		for i, key := range rec.Keys {
			fields = append(fields, fmt.Sprintf("%s: %s", key, renderValue(rec.Values[i])))
		}
		rows = append(rows, "{"+strings.Join(fields, ", ")+"}")
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

// renderValue flattens driver values. Nodes and relationships render
// as their property maps; everything else uses the default format.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + val + "'"
	case neo4j.Node:
		return renderProps(val.Props)
	case neo4j.Relationship:
		return renderProps(val.Props)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, renderValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		return renderProps(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func renderProps(props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s: %s", k, renderValue(props[k])))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}
