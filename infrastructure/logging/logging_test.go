package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// testLogger creates a logger that writes JSON to a buffer.
func testLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := bolt.NewJSONHandler(buf)
	logger := bolt.New(handler).SetLevel(bolt.TRACE)
	return logger, buf
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	if config.Level != "info" {
		t.Errorf("Level = %s, want info", config.Level)
	}
	if config.Format != "console" {
		t.Errorf("Format = %s, want console", config.Format)
	}
}

func TestServerConfig(t *testing.T) {
	t.Parallel()

	config := ServerConfig()

	if config.Level != "info" {
		t.Errorf("Level = %s, want info", config.Level)
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"bogus", bolt.INFO},
		{"", bolt.INFO},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		want  []string
	}{
		{"SessionID", SessionID("abc-123"), []string{`"session_id"`, `abc-123`}},
		{"Domain", Domain("vitals"), []string{`"domain"`, `vitals`}},
		{"ToolName", ToolName("GraphDB"), []string{`"tool"`, `GraphDB`}},
		{"Transport", Transport("sse"), []string{`"transport"`, `sse`}},
		{"Step", Step(3), []string{`"step"`, `3`}},
		{"URI", URI("resource://prompts/lab-results"), []string{`"uri"`, `resource://prompts/lab-results`}},
		{"Cached", Cached(true), []string{`"cached"`, `true`}},
		{"Fallback", Fallback(true), []string{`"fallback"`, `true`}},
		{"Duration", Duration(1500 * time.Millisecond), []string{`"duration_ms"`, `1500`}},
		{"ErrorField", ErrorField(errors.New("connect refused")), []string{`"error"`, `connect refused`}},
		{"Rows", Rows(14), []string{`"rows"`, `14`}},
		{"Retries", Retries(1), []string{`"retries"`, `1`}},
		{"Addr", Addr("0.0.0.0:8080"), []string{`"addr"`, `0.0.0.0:8080`}},
		{"Component", Component("catalog"), []string{`"component"`, `catalog`}},
		{"Operation", Operation("read"), []string{`"operation"`, `read`}},
		{"Str", Str("question", "how many doctors"), []string{`"question"`, `how many doctors`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := testLogger()
			tt.field(logger.Info()).Msg("test")

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestErrorFieldNil(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	ErrorField(nil)(logger.Info()).Msg("test")

	if strings.Contains(buf.String(), `"error"`) {
		t.Errorf("output %q contains an error field for a nil error", buf.String())
	}
}

func TestLogEventChaining(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	event := &LogEvent{event: logger.Info()}
	event.Add(SessionID("s-1")).Add(Step(2)).Msg("cycle complete")

	out := buf.String()
	for _, want := range []string{`"session_id"`, `s-1`, `"step"`, `2`, "cycle complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestGetInitializes(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get() returned nil")
	}
}
