package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
)

var (
	// ErrNotConnected indicates the client is not connected.
	ErrNotConnected = errors.New("client not connected")

	// ErrAlreadyConnected indicates the client is already connected.
	ErrAlreadyConnected = errors.New("client already connected")

	// ErrConnectionFailed indicates the connection to the server failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnknownTransport indicates an unrecognized transport selection.
	ErrUnknownTransport = errors.New("unknown transport")
)

// Transport selects how the client reaches the server. It is fixed at
// startup; nothing downstream of Connect branches on it.
type Transport string

const (
	// TransportStdio connects via stdin/stdout to a subprocess.
	TransportStdio Transport = "stdio"

	// TransportSSE connects via Server-Sent Events over HTTP.
	TransportSSE Transport = "sse"
)

// ParseTransport validates a transport selection string.
func ParseTransport(s string) (Transport, error) {
	switch Transport(s) {
	case TransportStdio:
		return TransportStdio, nil
	case TransportSSE:
		return TransportSSE, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransport, s)
	}
}

// ToolDef represents a tool definition from an MCP server.
type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

// ToolCall represents a tool call request.
type ToolCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ToolResult represents the result of a tool call.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content represents content in an MCP response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResourceContent is one content block of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

// ClientConfig configures an MCP client.
type ClientConfig struct {
	// Name is the client name.
	Name string

	// Version is the client version.
	Version string

	// Command is the server command to run (for stdio transport).
	Command []string

	// Transport specifies the communication transport.
	Transport Transport

	// URL is the base URL for SSE transport.
	URL string
}

// ClientOption configures a client.
type ClientOption func(*ClientConfig)

// WithClientName sets the client name.
func WithClientName(name string) ClientOption {
	return func(c *ClientConfig) {
		c.Name = name
	}
}

// WithClientVersion sets the client version.
func WithClientVersion(version string) ClientOption {
	return func(c *ClientConfig) {
		c.Version = version
	}
}

// WithServerCommand sets the server command for stdio transport.
func WithServerCommand(cmd ...string) ClientOption {
	return func(c *ClientConfig) {
		c.Command = cmd
		c.Transport = TransportStdio
	}
}

// WithSSEURL sets the base URL for SSE transport.
func WithSSEURL(url string) ClientOption {
	return func(c *ClientConfig) {
		c.URL = url
		c.Transport = TransportSSE
	}
}

// wire is a connected JSON-RPC byte stream. Both bindings satisfy it;
// the client never branches on the transport after Connect.
type wire interface {
	// send writes one JSON-RPC frame.
	send(v any) error
	// close tears the connection down and stops the receive loop.
	close() error
}

// Client consumes the GraphDB tool and prompt resources from the
// server. A client owns its session exclusively; calls are serialized
// by the sequential agent loop.
type Client struct {
	config     ClientConfig
	serverInfo *PeerInfo
	connected  bool
	mu         sync.RWMutex

	wire wire

	// Request tracking
	reqID     atomic.Int64
	responses map[int64]chan *rpcResponse
	respMu    sync.Mutex
}

// PeerInfo identifies one side of an MCP session.
type PeerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// JSON-RPC types for MCP communication.
type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type initParams struct {
	ProtocolVersion string      `json:"protocolVersion"`
	Capabilities    interface{} `json:"capabilities"`
	ClientInfo      PeerInfo    `json:"clientInfo"`
}

type initResult struct {
	ProtocolVersion string   `json:"protocolVersion"`
	ServerInfo      PeerInfo `json:"serverInfo"`
}

type listToolsRes struct {
	Tools []ToolDef `json:"tools"`
}

type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type readResourceParams struct {
	URI string `json:"uri"`
}

type readResourceRes struct {
	Contents []ResourceContent `json:"contents"`
}

// NewClient creates a new MCP client.
func NewClient(opts ...ClientOption) *Client {
	cfg := ClientConfig{
		Name:      "medgraph-client",
		Version:   "1.0.0",
		Transport: TransportStdio,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		config:    cfg,
		responses: make(map[int64]chan *rpcResponse),
	}
}

// Connect establishes the session and performs the initialize
// handshake.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return ErrAlreadyConnected
	}

	var (
		w   wire
		err error
	)
	switch c.config.Transport {
	case TransportStdio:
		w, err = newStdioWire(ctx, c.config.Command, c.dispatch)
	case TransportSSE:
		w, err = newSSEWire(ctx, c.config.URL, c.dispatch)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTransport, c.config.Transport)
	}
	if err != nil {
		return err
	}
	c.wire = w

	if err := c.initialize(ctx); err != nil {
		_ = c.wire.close()
		c.wire = nil
		return err
	}

	c.connected = true
	return nil
}

// dispatch routes one incoming JSON-RPC frame to its waiting request.
func (c *Client) dispatch(frame []byte) {
	if len(frame) == 0 {
		return
	}

	var resp rpcResponse
	if err := json.Unmarshal(frame, &resp); err != nil {
		return
	}

	var reqID int64
	switch id := resp.ID.(type) {
	case float64:
		reqID = int64(id)
	case int64:
		reqID = id
	case int:
		reqID = int64(id)
	default:
		return
	}

	c.respMu.Lock()
	if ch, exists := c.responses[reqID]; exists {
		ch <- &resp
		delete(c.responses, reqID)
	}
	c.respMu.Unlock()
}

func (c *Client) initialize(ctx context.Context) error {
	params := initParams{
		ProtocolVersion: protocolVersion,
		ClientInfo: PeerInfo{
			Name:    c.config.Name,
			Version: c.config.Version,
		},
	}

	resp, err := c.sendRequest(ctx, "initialize", params)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	if resp.Error != nil {
		return fmt.Errorf("initialize error: %s", resp.Error.Message)
	}

	var result initResult
	resultBytes, _ := json.Marshal(resp.Result)
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return fmt.Errorf("parse initialize result: %w", err)
	}

	c.serverInfo = &result.ServerInfo

	notification := rpcRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	return c.wire.send(notification)
}

func (c *Client) sendRequest(ctx context.Context, method string, params interface{}) (*rpcResponse, error) {
	id := c.reqID.Add(1)

	paramsBytes, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal params: %w", err)
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  paramsBytes,
	}

	respCh := make(chan *rpcResponse, 1)
	c.respMu.Lock()
	c.responses[id] = respCh
	c.respMu.Unlock()

	if err := c.wire.send(req); err != nil {
		c.respMu.Lock()
		delete(c.responses, id)
		c.respMu.Unlock()
		return nil, fmt.Errorf("send request: %w", err)
	}

	select {
	case resp := <-respCh:
		return resp, nil
	case <-ctx.Done():
		c.respMu.Lock()
		delete(c.responses, id)
		c.respMu.Unlock()
		return nil, ctx.Err()
	}
}

// Close releases the session. Safe on all exit paths; closing an
// unconnected client is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	c.connected = false
	if c.wire != nil {
		err := c.wire.close()
		c.wire = nil
		return err
	}
	return nil
}

func (c *Client) isConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// ListTools returns available tools from the server.
func (c *Client) ListTools(ctx context.Context) ([]ToolDef, error) {
	if !c.isConnected() {
		return nil, ErrNotConnected
	}

	resp, err := c.sendRequest(ctx, "tools/list", struct{}{})
	if err != nil {
		return nil, err
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("list tools error: %s", resp.Error.Message)
	}

	var result listToolsRes
	resultBytes, _ := json.Marshal(resp.Result)
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return nil, fmt.Errorf("parse list tools result: %w", err)
	}

	return result.Tools, nil
}

// CallTool calls a tool on the server.
func (c *Client) CallTool(ctx context.Context, req ToolCall) (*ToolResult, error) {
	if !c.isConnected() {
		return nil, ErrNotConnected
	}

	params := callToolParams{
		Name:      req.Name,
		Arguments: req.Arguments,
	}

	resp, err := c.sendRequest(ctx, "tools/call", params)
	if err != nil {
		return nil, err
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("call tool error: %s", resp.Error.Message)
	}

	var result ToolResult
	resultBytes, _ := json.Marshal(resp.Result)
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return nil, fmt.Errorf("parse call tool result: %w", err)
	}

	return &result, nil
}

// ReadResource reads a resource by URI and returns its text.
func (c *Client) ReadResource(ctx context.Context, uri string) (string, error) {
	if !c.isConnected() {
		return "", ErrNotConnected
	}

	resp, err := c.sendRequest(ctx, "resources/read", readResourceParams{URI: uri})
	if err != nil {
		return "", err
	}

	if resp.Error != nil {
		return "", fmt.Errorf("read resource error: %s", resp.Error.Message)
	}

	var result readResourceRes
	resultBytes, _ := json.Marshal(resp.Result)
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return "", fmt.Errorf("parse read resource result: %w", err)
	}

	if len(result.Contents) == 0 {
		return "", fmt.Errorf("read resource %s: empty contents", uri)
	}
	return result.Contents[0].Text, nil
}

// ServerInfo returns information about the connected server.
func (c *Client) ServerInfo() *PeerInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverInfo
}

// Tools returns all server tools as domain tools.
func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	defs, err := c.ListTools(ctx)
	if err != nil {
		return nil, err
	}

	tools := make([]tool.Tool, len(defs))
	for i, def := range defs {
		tools[i] = newProxyTool(def, c.createToolCaller())
	}

	return tools, nil
}

func (c *Client) createToolCaller() func(ctx context.Context, name string, input json.RawMessage) (tool.Result, error) {
	return func(ctx context.Context, name string, input json.RawMessage) (tool.Result, error) {
		result, err := c.CallTool(ctx, ToolCall{
			Name:      name,
			Arguments: input,
		})
		if err != nil {
			return tool.Result{}, err
		}

		if result.IsError {
			if len(result.Content) > 0 {
				return tool.Result{}, errors.New(result.Content[0].Text)
			}
			return tool.Result{}, errors.New("tool execution failed")
		}

		if len(result.Content) > 0 {
			return tool.TextResult(result.Content[0].Text), nil
		}

		return tool.Result{Output: json.RawMessage(`{}`)}, nil
	}
}
