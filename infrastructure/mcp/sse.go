package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// sseWire speaks JSON-RPC over an SSE session: requests go out as HTTP
// POSTs to the session endpoint, responses arrive as `message` events
// on the long-lived GET stream. The server announces the endpoint in
// the first `endpoint` event after the stream opens.
type sseWire struct {
	base       *url.URL
	httpClient *http.Client

	endpoint   string
	endpointCh chan struct{}
	once       sync.Once

	stream io.ReadCloser
	cancel context.CancelFunc
	sendMu sync.Mutex
}

// endpointWait bounds how long Connect waits for the server to
// announce the session endpoint.
const endpointWait = 10 * time.Second

func newSSEWire(ctx context.Context, baseURL string, dispatch func([]byte)) (*sseWire, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url %q: %v", ErrConnectionFailed, baseURL, err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())

	w := &sseWire{
		base:       base,
		httpClient: &http.Client{},
		endpointCh: make(chan struct{}),
		cancel:     cancel,
	}

	streamURL := strings.TrimRight(baseURL, "/") + "/sse"
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, streamURL, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: open sse stream: %v", ErrConnectionFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("%w: sse stream status %d", ErrConnectionFailed, resp.StatusCode)
	}
	w.stream = resp.Body

	go w.readEvents(dispatch)

	select {
	case <-w.endpointCh:
	case <-time.After(endpointWait):
		_ = w.close()
		return nil, fmt.Errorf("%w: no endpoint event", ErrConnectionFailed)
	case <-ctx.Done():
		_ = w.close()
		return nil, ctx.Err()
	}

	return w, nil
}

// readEvents parses the SSE stream. An event is an `event:` line, one
// or more `data:` lines, then a blank line.
func (w *sseWire) readEvents(dispatch func([]byte)) {
	scanner := bufio.NewScanner(w.stream)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)

	var event string
	var data bytes.Buffer

	flush := func() {
		switch event {
		case "endpoint":
			w.setEndpoint(strings.TrimSpace(data.String()))
		case "message":
			payload := make([]byte, data.Len())
			copy(payload, data.Bytes())
			dispatch(payload)
		}
		event = ""
		data.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		case strings.HasPrefix(line, ":"):
			// comment, keep-alive
		}
	}
}

func (w *sseWire) setEndpoint(ref string) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return
	}
	w.sendMu.Lock()
	w.endpoint = w.base.ResolveReference(refURL).String()
	w.sendMu.Unlock()
	w.once.Do(func() { close(w.endpointCh) })
}

func (w *sseWire) send(v any) error {
	w.sendMu.Lock()
	endpoint := w.endpoint
	w.sendMu.Unlock()

	if endpoint == "" {
		return fmt.Errorf("%w: no session endpoint", ErrNotConnected)
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	resp, err := w.httpClient.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post frame: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("post frame: status %d", resp.StatusCode)
	}
	return nil
}

func (w *sseWire) close() error {
	w.cancel()
	if w.stream != nil {
		return w.stream.Close()
	}
	return nil
}
