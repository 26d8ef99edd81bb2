package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// stdioWire speaks newline-delimited JSON-RPC to a server subprocess
// over its stdin/stdout pipes.
type stdioWire struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	encoder *json.Encoder
	sendMu  sync.Mutex
}

// maxFrameSize bounds one incoming frame. Resource reads carry whole
// prompt slices, so the default scanner buffer is too small.
const maxFrameSize = 1 << 20

func newStdioWire(ctx context.Context, command []string, dispatch func([]byte)) (*stdioWire, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("%w: no command specified", ErrConnectionFailed)
	}

	w := &stdioWire{}
	w.cmd = exec.CommandContext(ctx, command[0], command[1:]...)

	var err error
	w.stdin, err = w.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %v", ErrConnectionFailed, err)
	}

	w.stdout, err = w.cmd.StdoutPipe()
	if err != nil {
		_ = w.stdin.Close()
		return nil, fmt.Errorf("%w: stdout pipe: %v", ErrConnectionFailed, err)
	}

	if err := w.cmd.Start(); err != nil {
		_ = w.stdin.Close()
		_ = w.stdout.Close()
		return nil, fmt.Errorf("%w: start command: %v", ErrConnectionFailed, err)
	}

	w.encoder = json.NewEncoder(w.stdin)

	go w.readFrames(dispatch)

	return w, nil
}

func (w *stdioWire) readFrames(dispatch func([]byte)) {
	scanner := bufio.NewScanner(w.stdout)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)
	for scanner.Scan() {
		dispatch(scanner.Bytes())
	}
}

func (w *stdioWire) send(v any) error {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()
	return w.encoder.Encode(v)
}

func (w *stdioWire) close() error {
	if w.stdin != nil {
		_ = w.stdin.Close()
	}
	if w.stdout != nil {
		_ = w.stdout.Close()
	}
	if w.cmd != nil && w.cmd.Process != nil {
		_ = w.cmd.Process.Kill()
		_ = w.cmd.Wait()
	}
	return nil
}
