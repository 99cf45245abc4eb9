package ariadom

import (
	"fmt"
	"sync"

	"golang.org/x/net/html"

	"github.com/kitetree/ariascope/internal/ariaerr"
)

// refEntry is the cached {role,name,ref} triple spec.md §4.1 describes as
// living on the DOM element itself. We keep it keyed by *html.Node in a
// side table instead of mutating the parsed document — html.Node carries no
// spare field for it, and a side table gives the exact same "same element,
// same build, same ref" guarantee without reaching into a third-party
// parser's struct.
type refEntry struct {
	role string
	name string
	ref  string
}

// Cache owns the "lastRef" counter and the per-element ref cache from
// spec.md §5. Passing the same Cache to successive builds keeps refs stable
// across them; a fresh Cache restarts numbering, which is how tests get
// deterministic refs, per spec.md §9's design note. The CLI and the MCP
// server pass no Cache, so each of their builds gets a private one.
type Cache struct {
	mu      sync.Mutex
	lastRef int
	byNode  map[*html.Node]refEntry
	active  bool
}

// NewCache creates an empty ref cache.
func NewCache() *Cache {
	return &Cache{byNode: make(map[*html.Node]refEntry)}
}

// BeginAriaCaches acquires the bracketed resource spec.md §5 requires around
// a build. HTMLBridge has no real OS-level cache to acquire, but the bracket
// is kept so a build always pairs Begin with End via defer, exactly as a
// bridge backed by a real accessibility layer would need. Calling it a
// second time before the matching EndAriaCaches is a contract violation.
func (c *Cache) BeginAriaCaches() {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		ariaerr.Raise("BeginAriaCaches called while already active (missing EndAriaCaches)")
	}
	c.active = true
	c.mu.Unlock()
}

// EndAriaCaches releases the bracketed resource. Always call via defer
// immediately after BeginAriaCaches, even when the build panics. Calling it
// without a matching BeginAriaCaches is a contract violation.
func (c *Cache) EndAriaCaches() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		ariaerr.Raise("EndAriaCaches called without a matching BeginAriaCaches")
	}
	c.active = false
	c.mu.Unlock()
}

// RefFor returns the stable ref for n, minting a new one unless the cached
// triple's role and name both match (spec.md §4.1 "Ref assignment"). Calling
// it outside a BeginAriaCaches/EndAriaCaches bracket is a contract violation.
func (c *Cache) RefFor(n *html.Node, refPrefix, role, name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		ariaerr.Raise("RefFor called outside a BeginAriaCaches/EndAriaCaches bracket")
	}

	if entry, ok := c.byNode[n]; ok && entry.role == role && entry.name == name {
		return entry.ref
	}

	c.lastRef++
	ref := fmt.Sprintf("%se%d", refPrefix, c.lastRef)
	c.byNode[n] = refEntry{role: role, name: name, ref: ref}
	return ref
}

// Reset clears the counter and cache. Exposed for tests that want isolated
// numbering without constructing a new Cache.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastRef = 0
	c.byNode = make(map[*html.Node]refEntry)
}
