package application

import (
	"context"
	"time"

	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/logging"
	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/storage/memory"
)

// ResourceReader fetches remote resource text by URI. The MCP client
// satisfies it; a nil reader puts the catalog in offline mode.
type ResourceReader interface {
	ReadResource(ctx context.Context, uri string) (string, error)
}

// DefaultFetchTimeout bounds one remote slice fetch.
const DefaultFetchTimeout = 10 * time.Second

// Catalog resolves domain prompt slices. Remote fetches are tried
// first and cached for the process lifetime; any failure falls back to
// the baked-in text, which is content-equivalent to the server copy.
type Catalog struct {
	reader  ResourceReader
	cache   *memory.PromptCache
	timeout time.Duration
}

// NewCatalog creates a catalog over the given reader. Pass nil to run
// offline on fallback texts only.
func NewCatalog(reader ResourceReader) *Catalog {
	return &Catalog{
		reader:  reader,
		cache:   memory.NewPromptCache(),
		timeout: DefaultFetchTimeout,
	}
}

// Slice returns the text for a prompt slice. It never fails: the
// offline fallback covers every key.
func (c *Catalog) Slice(ctx context.Context, key prompt.Key) string {
	if text, ok := c.cache.Get(key); ok {
		logging.Debug().
			Add(logging.Component("catalog")).
			Add(logging.Domain(string(key))).
			Add(logging.Cached(true)).
			Msg("slice resolved")
		return text
	}

	if c.reader != nil {
		start := time.Now()
		fctx, cancel := context.WithTimeout(ctx, c.timeout)
		text, err := c.reader.ReadResource(fctx, prompt.URI(key))
		cancel()

		if err == nil && text != "" {
			c.cache.Put(key, text)
			logging.Info().
				Add(logging.Component("catalog")).
				Add(logging.Domain(string(key))).
				Add(logging.URI(prompt.URI(key))).
				Add(logging.Duration(time.Since(start))).
				Msg("slice fetched")
			return text
		}

		logging.Warn().
			Add(logging.Component("catalog")).
			Add(logging.Domain(string(key))).
			Add(logging.URI(prompt.URI(key))).
			Add(logging.ErrorField(err)).
			Add(logging.Fallback(true)).
			Msg("slice fetch failed, using offline text")
	}

	// Fallbacks are not cached so a recovered transport is retried on
	// the next request.
	return prompt.Fallback(key)
}
