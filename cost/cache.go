package cost

import (
	"sort"
	"sync"

	"github.com/katalvlaran/padchain/keypad"
)

type cacheKey struct {
	depth    int
	from, to keypad.Key
}

// Cache memoizes directional transition costs by (depth, from, to).
// Entries are never invalidated: each is a pure function of its key.
type Cache struct {
	mu sync.RWMutex
	m  map[cacheKey]uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{m: make(map[cacheKey]uint64)}
}

func (c *Cache) load(k cacheKey) (uint64, bool) {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	return v, ok
}

func (c *Cache) store(k cacheKey, v uint64) {
	c.mu.Lock()
	c.m[k] = v
	c.mu.Unlock()
}

// Len returns the number of memoized transitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Entries returns a snapshot of the cache ordered by depth, from, to.
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	out := make([]Entry, 0, len(c.m))
	for k, v := range c.m {
		out = append(out, Entry{Depth: k.depth, From: k.from, To: k.to, Presses: v})
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	return out
}
