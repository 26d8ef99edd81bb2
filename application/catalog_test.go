package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/medgraph-assistant/application"
	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
)

// countingReader returns a fixed text per URI and counts fetches.
type countingReader struct {
	texts map[string]string
	err   error
	calls int
}

func (r *countingReader) ReadResource(_ context.Context, uri string) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	return r.texts[uri], nil
}

func TestCatalog_RemoteFetch(t *testing.T) {
	t.Parallel()

	reader := &countingReader{texts: map[string]string{
		prompt.URI(prompt.KeyVitals): "remote vitals text {user_question}",
	}}
	catalog := application.NewCatalog(reader)

	text := catalog.Slice(context.Background(), prompt.KeyVitals)
	if text != "remote vitals text {user_question}" {
		t.Errorf("Slice() = %q", text)
	}
	if reader.calls != 1 {
		t.Errorf("reader called %d times, want 1", reader.calls)
	}
}

func TestCatalog_CachesPerKey(t *testing.T) {
	t.Parallel()

	reader := &countingReader{texts: map[string]string{
		prompt.URI(prompt.KeySchema): "remote schema text",
	}}
	catalog := application.NewCatalog(reader)

	first := catalog.Slice(context.Background(), prompt.KeySchema)
	second := catalog.Slice(context.Background(), prompt.KeySchema)

	if first != second {
		t.Errorf("cached slice differs: %q vs %q", first, second)
	}
	if reader.calls != 1 {
		t.Errorf("reader called %d times, want 1", reader.calls)
	}
}

func TestCatalog_FallbackOnTransportFailure(t *testing.T) {
	t.Parallel()

	reader := &countingReader{err: errors.New("connection refused")}
	catalog := application.NewCatalog(reader)

	text := catalog.Slice(context.Background(), prompt.KeyLabs)
	if text != prompt.Fallback(prompt.KeyLabs) {
		t.Error("Slice() did not return the offline fallback")
	}
}

func TestCatalog_FallbackNotCached(t *testing.T) {
	t.Parallel()

	reader := &countingReader{err: errors.New("connection refused")}
	catalog := application.NewCatalog(reader)

	catalog.Slice(context.Background(), prompt.KeyLabs)

	// The transport recovers; the next request fetches remotely.
	reader.err = nil
	reader.texts = map[string]string{prompt.URI(prompt.KeyLabs): "remote labs text"}

	text := catalog.Slice(context.Background(), prompt.KeyLabs)
	if text != "remote labs text" {
		t.Errorf("Slice() = %q, want the recovered remote text", text)
	}
	if reader.calls != 2 {
		t.Errorf("reader called %d times, want 2", reader.calls)
	}
}

func TestCatalog_Offline(t *testing.T) {
	t.Parallel()

	catalog := application.NewCatalog(nil)

	for _, key := range prompt.Keys() {
		text := catalog.Slice(context.Background(), key)
		if text != prompt.Fallback(key) {
			t.Errorf("Slice(%q) is not the offline fallback", key)
		}
	}
}
