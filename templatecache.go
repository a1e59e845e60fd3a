package img2ascii

import "sync"

// templateKey identifies one buildable template set. Template
// construction is idempotent over this key, which makes the sets
// cacheable across renders with the same configuration.
type templateKey struct {
	alphabet   Alphabet
	width      int
	height     int
	fontSource string
}

// templateCache stores built template sets by key. Entries are
// append-only; a cached set is immutable and shared read-only.
type templateCache struct {
	mu      sync.RWMutex
	entries map[templateKey]*TemplateSet
	hits    int
	misses  int
}

func newTemplateCache() *templateCache {
	return &templateCache{entries: make(map[templateKey]*TemplateSet)}
}

// fetch returns the cached set for key, building and storing it on a
// miss. The build error (invalid tile size) is returned unwrapped.
func (c *templateCache) fetch(key templateKey) (*TemplateSet, error) {
	c.mu.RLock()
	ts, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return ts, nil
	}

	built, err := BuildTemplates(key.alphabet, key.width, key.height, key.fontSource)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have built the same key concurrently; both
	// results are identical by determinism, keep the first stored.
	if existing, ok := c.entries[key]; ok {
		c.hits++
		return existing, nil
	}
	c.misses++
	c.entries[key] = built
	return built, nil
}

// stats returns cache hit/miss counters.
func (c *templateCache) stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
