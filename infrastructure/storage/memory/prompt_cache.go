package memory

import (
	"sync"

	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
)

// PromptCache is an in-memory cache of prompt slice texts keyed by slice.
// Entries are immutable once stored: the first text written for a key wins
// and later writes are ignored, so a slice is fetched at most once per
// process regardless of how many sessions consult it.
type PromptCache struct {
	entries map[prompt.Key]string
	mu      sync.RWMutex
}

// NewPromptCache creates an empty prompt cache.
func NewPromptCache() *PromptCache {
	return &PromptCache{
		entries: make(map[prompt.Key]string),
	}
}

// Get returns the cached text for a slice, if present.
func (c *PromptCache) Get(key prompt.Key) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.entries[key]
	return text, ok
}

// Put stores the text for a slice. If the key is already cached the
// existing entry is kept and Put reports false.
func (c *PromptCache) Put(key prompt.Key, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return false
	}
	c.entries[key] = text
	return true
}

// Len returns the number of cached slices.
func (c *PromptCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
