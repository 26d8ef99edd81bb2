// Package mcp provides Model Context Protocol integration for the
// assistant. It wraps github.com/felixgeelhaar/mcp-go to expose the
// GraphDB tool and prompt resources, and implements the client side of
// the protocol over stdio and SSE bindings.
package mcp

import (
	mcpgo "github.com/felixgeelhaar/mcp-go"
)

// Re-export core types from mcp-go for convenience.
type (
	// ServerInfo contains MCP server metadata.
	ServerInfo = mcpgo.ServerInfo

	// Capabilities declares features the server supports.
	Capabilities = mcpgo.Capabilities

	// ServeOption configures server behavior.
	ServeOption = mcpgo.ServeOption

	// HTTPOption configures HTTP transport.
	HTTPOption = mcpgo.HTTPOption

	// Middleware is a function that wraps request handling.
	Middleware = mcpgo.Middleware
)

// Re-export constructors and functions from mcp-go.
var (
	// WithMiddleware adds middleware to serve options.
	WithMiddleware = mcpgo.WithMiddleware

	// WithInstructions sets server instructions.
	WithInstructions = mcpgo.WithInstructions

	// Middleware constructors
	Recover   = mcpgo.Recover
	RequestID = mcpgo.RequestID
	Timeout   = mcpgo.Timeout
	Logging   = mcpgo.Logging
)

// protocolVersion is the MCP protocol revision spoken by the client.
const protocolVersion = "2024-11-05"
