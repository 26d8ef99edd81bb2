package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseTransport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Transport
		wantErr bool
	}{
		{"stdio", TransportStdio, false},
		{"sse", TransportSSE, false},
		{"", "", true},
		{"http", "", true},
		{"STDIO", "", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("input %q", tt.input), func(t *testing.T) {
			got, err := ParseTransport(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTransport) {
					t.Errorf("ParseTransport(%q) error = %v, want ErrUnknownTransport", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransport(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTransport(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Parallel()

	t.Run("WithClientName sets name", func(t *testing.T) {
		t.Parallel()

		cfg := ClientConfig{}
		WithClientName("test-client")(&cfg)

		if cfg.Name != "test-client" {
			t.Errorf("Name = %s, want test-client", cfg.Name)
		}
	})

	t.Run("WithClientVersion sets version", func(t *testing.T) {
		t.Parallel()

		cfg := ClientConfig{}
		WithClientVersion("2.0.0")(&cfg)

		if cfg.Version != "2.0.0" {
			t.Errorf("Version = %s, want 2.0.0", cfg.Version)
		}
	})

	t.Run("WithServerCommand sets command and transport", func(t *testing.T) {
		t.Parallel()

		cfg := ClientConfig{}
		WithServerCommand("assistant", "server", "--transport", "stdio")(&cfg)

		if len(cfg.Command) != 4 {
			t.Errorf("Command length = %d, want 4", len(cfg.Command))
		}
		if cfg.Command[0] != "assistant" {
			t.Errorf("Command[0] = %s, want assistant", cfg.Command[0])
		}
		if cfg.Transport != TransportStdio {
			t.Errorf("Transport = %s, want stdio", cfg.Transport)
		}
	})

	t.Run("WithSSEURL sets URL and transport", func(t *testing.T) {
		t.Parallel()

		cfg := ClientConfig{}
		WithSSEURL("http://localhost:8080")(&cfg)

		if cfg.URL != "http://localhost:8080" {
			t.Errorf("URL = %s, want http://localhost:8080", cfg.URL)
		}
		if cfg.Transport != TransportSSE {
			t.Errorf("Transport = %s, want sse", cfg.Transport)
		}
	})
}

func TestClient_NotConnected(t *testing.T) {
	t.Parallel()

	client := NewClient()
	ctx := context.Background()

	if _, err := client.ListTools(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("ListTools() error = %v, want ErrNotConnected", err)
	}
	if _, err := client.CallTool(ctx, ToolCall{Name: GraphDBToolName}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("CallTool() error = %v, want ErrNotConnected", err)
	}
	if _, err := client.ReadResource(ctx, "resource://neo4j-schema"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("ReadResource() error = %v, want ErrNotConnected", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on unconnected client error = %v, want nil", err)
	}
}

func TestClient_ConnectStdioNoCommand(t *testing.T) {
	t.Parallel()

	client := NewClient()
	err := client.Connect(context.Background())
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

// fakeMCPServer serves the SSE handshake and answers JSON-RPC requests
// posted to its message endpoint by writing responses back onto the
// event stream.
type fakeMCPServer struct {
	frames chan string

	mu      sync.Mutex
	methods []string
	queries []string
}

func newFakeMCPServer() *fakeMCPServer {
	return &fakeMCPServer{frames: make(chan string, 16)}
}

func (f *fakeMCPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/sse"):
		f.serveStream(w, r)
	case r.Method == http.MethodPost:
		f.serveMessage(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeMCPServer) serveStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	fmt.Fprintf(w, "event: endpoint\ndata: /messages?session=abc\n\n")
	flusher.Flush()

	for {
		select {
		case frame := <-f.frames:
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", frame)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func (f *fakeMCPServer) serveMessage(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.methods = append(f.methods, req.Method)
	f.mu.Unlock()

	var result string
	switch req.Method {
	case "initialize":
		result = `{"protocolVersion": "2024-11-05", "serverInfo": {"name": "neo4j-medical-server", "version": "1.0.0"}}`
	case "notifications/initialized":
		w.WriteHeader(http.StatusAccepted)
		return
	case "tools/list":
		result = `{"tools": [{"name": "GraphDB", "description": "Run a Cypher query against the medical Neo4j database"}]}`
	case "tools/call":
		var params callToolParams
		_ = json.Unmarshal(req.Params, &params)
		var args struct {
			Query string `json:"query"`
		}
		_ = json.Unmarshal(params.Arguments, &args)
		f.mu.Lock()
		f.queries = append(f.queries, args.Query)
		f.mu.Unlock()

		if strings.Contains(args.Query, "boom") {
			result = `{"content": [{"type": "text", "text": "tool exploded"}], "isError": true}`
		} else {
			result = `{"content": [{"type": "text", "text": "[{numberOfDoctors: 14}]"}]}`
		}
	case "resources/read":
		var params readResourceParams
		_ = json.Unmarshal(req.Params, &params)
		contents, _ := json.Marshal([]ResourceContent{{
			URI:      params.URI,
			MimeType: "text/plain",
			Text:     "slice text for " + params.URI,
		}})
		result = fmt.Sprintf(`{"contents": %s}`, contents)
	default:
		http.Error(w, "unknown method", http.StatusBadRequest)
		return
	}

	idBytes, _ := json.Marshal(req.ID)
	f.frames <- fmt.Sprintf(`{"jsonrpc": "2.0", "id": %s, "result": %s}`, idBytes, result)
	w.WriteHeader(http.StatusAccepted)
}

func (f *fakeMCPServer) calledMethods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.methods...)
}

func (f *fakeMCPServer) calledQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func connectedSSEClient(t *testing.T) (*Client, *fakeMCPServer) {
	t.Helper()

	fake := newFakeMCPServer()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := NewClient(WithSSEURL(srv.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client, fake
}

func TestClient_SSE(t *testing.T) {
	t.Parallel()

	t.Run("connect performs initialize handshake", func(t *testing.T) {
		t.Parallel()

		client, fake := connectedSSEClient(t)

		info := client.ServerInfo()
		if info == nil {
			t.Fatal("ServerInfo() = nil after Connect()")
		}
		if info.Name != "neo4j-medical-server" {
			t.Errorf("ServerInfo().Name = %s, want neo4j-medical-server", info.Name)
		}

		methods := fake.calledMethods()
		if len(methods) < 2 || methods[0] != "initialize" || methods[1] != "notifications/initialized" {
			t.Errorf("handshake methods = %v, want initialize then notifications/initialized", methods)
		}

		if err := client.Connect(context.Background()); !errors.Is(err, ErrAlreadyConnected) {
			t.Errorf("second Connect() error = %v, want ErrAlreadyConnected", err)
		}
	})

	t.Run("list tools", func(t *testing.T) {
		t.Parallel()

		client, _ := connectedSSEClient(t)

		defs, err := client.ListTools(context.Background())
		if err != nil {
			t.Fatalf("ListTools() error = %v", err)
		}
		if len(defs) != 1 {
			t.Fatalf("ListTools() returned %d tools, want 1", len(defs))
		}
		if defs[0].Name != GraphDBToolName {
			t.Errorf("tool name = %s, want %s", defs[0].Name, GraphDBToolName)
		}
	})

	t.Run("call tool", func(t *testing.T) {
		t.Parallel()

		client, _ := connectedSSEClient(t)

		result, err := client.CallTool(context.Background(), ToolCall{
			Name:      GraphDBToolName,
			Arguments: json.RawMessage(`{"query": "MATCH (d:Doctor) RETURN count(d)"}`),
		})
		if err != nil {
			t.Fatalf("CallTool() error = %v", err)
		}
		if result.IsError {
			t.Error("CallTool() result.IsError = true, want false")
		}
		if len(result.Content) != 1 || result.Content[0].Text != "[{numberOfDoctors: 14}]" {
			t.Errorf("CallTool() content = %+v", result.Content)
		}
	})

	t.Run("read resource", func(t *testing.T) {
		t.Parallel()

		client, _ := connectedSSEClient(t)

		text, err := client.ReadResource(context.Background(), "resource://prompts/vitals-bp")
		if err != nil {
			t.Fatalf("ReadResource() error = %v", err)
		}
		if text != "slice text for resource://prompts/vitals-bp" {
			t.Errorf("ReadResource() = %q", text)
		}
	})

	t.Run("tools wraps server errors", func(t *testing.T) {
		t.Parallel()

		client, _ := connectedSSEClient(t)

		tools, err := client.Tools(context.Background())
		if err != nil {
			t.Fatalf("Tools() error = %v", err)
		}
		if len(tools) != 1 {
			t.Fatalf("Tools() returned %d tools, want 1", len(tools))
		}

		_, err = tools[0].Execute(context.Background(), json.RawMessage(`{"query": "boom"}`))
		if err == nil || err.Error() != "tool exploded" {
			t.Errorf("Execute() error = %v, want tool exploded", err)
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		client, _ := connectedSSEClient(t)

		if err := client.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
		if err := client.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}
		if _, err := client.ListTools(context.Background()); !errors.Is(err, ErrNotConnected) {
			t.Errorf("ListTools() after Close() error = %v, want ErrNotConnected", err)
		}
	})
}
