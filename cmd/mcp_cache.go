package cmd

import (
	"os"
	"sync"
	"time"

	"golang.org/x/net/html"
)

// mcpCacheEntry holds a cached parsed document, the fixture's mtime at read
// time, and the cache timestamp used for TTL expiry.
type mcpCacheEntry struct {
	doc      *html.Node
	mtime    time.Time
	cachedAt time.Time
}

// mcpFixtureCache is a TTL-based cache for parsed HTML fixtures, adapted
// from the teacher's mcpTreeCache (cmd/mcp_cache.go) — same shape, keyed by
// fixture path + mtime instead of app/window/pid, since this repository has
// no live OS accessibility tree to invalidate on window focus changes. An
// edited fixture on disk invalidates itself: its mtime no longer matches
// the cached entry's, even within the TTL window.
type mcpFixtureCache struct {
	mu      sync.Mutex
	entries map[string]mcpCacheEntry
	ttl     time.Duration
}

// newMCPFixtureCache creates a new cache. A ttl of 0 disables caching.
func newMCPFixtureCache(ttl time.Duration) *mcpFixtureCache {
	return &mcpFixtureCache{
		entries: make(map[string]mcpCacheEntry),
		ttl:     ttl,
	}
}

// loadFixtureDoc returns the cached parsed document for path if it is
// within TTL and the fixture's mtime hasn't changed since it was cached,
// otherwise it re-reads and re-parses the file.
func (c *mcpFixtureCache) loadFixtureDoc(path string) (*html.Node, error) {
	if c.ttl == 0 {
		return parseFixtureFile(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	mtime := info.ModTime()

	c.mu.Lock()
	if entry, ok := c.entries[path]; ok && entry.mtime.Equal(mtime) && time.Since(entry.cachedAt) < c.ttl {
		doc := entry.doc
		c.mu.Unlock()
		return doc, nil
	}
	c.mu.Unlock()

	doc, err := parseFixtureFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = mcpCacheEntry{doc: doc, mtime: mtime, cachedAt: time.Now()}
	c.mu.Unlock()

	return doc, nil
}

// invalidate removes the cached entry for one fixture path.
func (c *mcpFixtureCache) invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// invalidateAll clears the entire cache.
func (c *mcpFixtureCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]mcpCacheEntry)
}

func parseFixtureFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return html.Parse(f)
}
