package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpgo "github.com/felixgeelhaar/mcp-go"
	mcpserver "github.com/felixgeelhaar/mcp-go/server"

	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/graph"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
)

// ServerName is the public identifier of the medical graph server.
const ServerName = "neo4j-medical-server"

// MedicalServer exposes the GraphDB tool and the prompt slice
// resources over MCP.
type MedicalServer struct {
	srv      *mcpgo.Server
	executor *graph.Executor
}

// MedicalServerConfig configures the server.
type MedicalServerConfig struct {
	// Version is the server version string.
	Version string

	// Executor runs Cypher queries for the GraphDB tool.
	Executor *graph.Executor
}

// NewMedicalServer creates the server and registers the tool and all
// prompt resources.
func NewMedicalServer(cfg MedicalServerConfig) *MedicalServer {
	info := mcpgo.ServerInfo{
		Name:        ServerName,
		Version:     cfg.Version,
		Description: "Neo4j medical graph tools and prompt slices",
		Capabilities: mcpgo.Capabilities{
			Tools:     true,
			Resources: true,
		},
	}

	s := &MedicalServer{
		srv:      mcpgo.NewServer(info),
		executor: cfg.Executor,
	}

	s.registerGraphDB()
	s.registerPromptResources()

	return s
}

// registerGraphDB registers the Cypher query tool.
func (s *MedicalServer) registerGraphDB() {
	handler := func(ctx context.Context, input json.RawMessage) (string, error) {
		query, err := decodeQuery(input)
		if err != nil {
			// A malformed call renders as error text so the model can
			// correct itself.
			return fmt.Sprintf("Error executing Cypher: %v", err), nil
		}
		return s.executor.Run(ctx, query), nil
	}

	s.srv.Tool(GraphDBToolName).
		Description(graphDBDescription).
		Handler(handler)
}

// registerPromptResources registers every prompt slice under its
// locator.
func (s *MedicalServer) registerPromptResources() {
	for _, key := range prompt.Keys() {
		key := key
		meta := prompt.MetaFor(key)
		s.srv.Resource(prompt.URI(key)).
			Name(meta.Name).
			Description(meta.Description).
			MimeType("text/plain").
			Handler(func(ctx context.Context, uri string, params map[string]string) (*mcpserver.ResourceContent, error) {
				return &mcpserver.ResourceContent{
					URI:      uri,
					MimeType: "text/plain",
					Text:     prompt.Fallback(key),
				}, nil
			})
	}
}

// Server returns the underlying mcp-go server.
func (s *MedicalServer) Server() *mcpgo.Server {
	return s.srv
}

// Use adds middleware to the server.
func (s *MedicalServer) Use(middlewares ...mcpgo.Middleware) {
	for _, mw := range middlewares {
		mw := mw
		s.srv.Use(func(next mcpserver.HandlerFunc) mcpserver.HandlerFunc {
			return mcpserver.HandlerFunc(mw(mcpgo.MiddlewareHandlerFunc(next)))
		})
	}
}

// ServeStdio runs the server over stdin/stdout.
func (s *MedicalServer) ServeStdio(ctx context.Context, opts ...mcpgo.ServeOption) error {
	logging.Info().
		Add(logging.Component("server")).
		Add(logging.Transport(string(TransportStdio))).
		Msg("serving MCP")
	return mcpgo.ServeStdio(ctx, s.srv, opts...)
}

// ServeHTTP runs the server over HTTP with SSE.
func (s *MedicalServer) ServeHTTP(ctx context.Context, addr string, opts ...mcpgo.HTTPOption) error {
	logging.Info().
		Add(logging.Component("server")).
		Add(logging.Transport(string(TransportSSE))).
		Add(logging.Addr(addr)).
		Msg("serving MCP")
	return mcpgo.ServeHTTP(ctx, s.srv, addr, opts...)
}
