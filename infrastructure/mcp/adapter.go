package mcp

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
)

// proxyTool wraps a remote MCP tool as a domain tool.
type proxyTool struct {
	def    ToolDef
	caller func(ctx context.Context, name string, input json.RawMessage) (tool.Result, error)
	annot  tool.Annotations
}

func newProxyTool(def ToolDef, caller func(ctx context.Context, name string, input json.RawMessage) (tool.Result, error)) *proxyTool {
	return &proxyTool{
		def:    def,
		caller: caller,
	}
}

func (t *proxyTool) Name() string {
	return t.def.Name
}

func (t *proxyTool) Description() string {
	return t.def.Description
}

func (t *proxyTool) InputSchema() tool.Schema {
	if len(t.def.InputSchema) == 0 {
		return tool.EmptySchema()
	}
	return tool.NewSchema(t.def.InputSchema)
}

func (t *proxyTool) Annotations() tool.Annotations {
	return t.annot
}

func (t *proxyTool) Execute(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	return t.caller(ctx, t.def.Name, input)
}

// DefForTool converts a domain tool to an MCP tool definition.
func DefForTool(t tool.Tool) ToolDef {
	def := ToolDef{
		Name:        t.Name(),
		Description: t.Description(),
	}

	schema := t.InputSchema()
	if !schema.IsEmpty() {
		def.InputSchema = schema.Raw()
	}

	return def
}
