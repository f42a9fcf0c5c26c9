package pattern

import (
	"sync"

	"github.com/born-ml/shapeguard/internal/dtype"
)

// Cache parses each distinct pattern expression at most once. Hosts
// that construct patterns lazily per annotation site key entries by the
// expression text (or any stable key) and share the parsed result
// across all checks of that site. Parsing is pure, so a lost race would
// be harmless, but the lock guarantees one parse per key anyway.
//
// The zero value is ready to use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	spec dtype.Spec
	pat  Pattern
	err  error
}

// Get returns the parse result for key, invoking Parse on the first
// lookup only. Parse failures are cached too: the pattern text behind a
// key is fixed, so retrying cannot change the outcome.
func (c *Cache) Get(key string, raw any, resolve dtype.Resolver) (dtype.Spec, Pattern, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.spec, e.pat, e.err
	}
	spec, pat, err := Parse(raw, resolve)
	if c.entries == nil {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = cacheEntry{spec: spec, pat: pat, err: err}
	return spec, pat, err
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
