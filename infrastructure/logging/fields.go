package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for assistant runtime logging.

// SessionID adds a session ID field.
func SessionID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("session_id", id)
	}
}

// Domain adds a prompt domain field.
func Domain(d string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("domain", d)
	}
}

// ToolName adds a tool name field.
func ToolName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("tool", name)
	}
}

// Transport adds a transport binding field.
func Transport(t string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("transport", t)
	}
}

// Step adds a loop step number field.
func Step(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("step", n)
	}
}

// URI adds a resource URI field.
func URI(uri string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("uri", uri)
	}
}

// Cached adds a cached field.
func Cached(cached bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("cached", cached)
	}
}

// Fallback adds an offline-fallback field.
func Fallback(used bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("fallback", used)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Rows adds a result row count field.
func Rows(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("rows", n)
	}
}

// Retries adds a retry count field.
func Retries(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("retries", n)
	}
}

// Addr adds a listen address field.
func Addr(addr string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("addr", addr)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
