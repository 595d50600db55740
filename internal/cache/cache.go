// Package cache memoizes lunar facts per calendar date for the
// presentation layer.
//
// The engine itself is stateless; this cache only saves recomputation when
// a view asks for the same day more than once (month grids that overlap a
// day list, event searches that walk past already rendered days). Entries
// live in memory for the lifetime of the process.
package cache

import (
	"sync"

	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
)

// DefaultCapacity bounds the number of cached days (about 25 years).
const DefaultCapacity = 10000

// Cache provides concurrency-safe per-date storage of lunar facts.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[calendar.Date]lunar.Facts
	hits     int
	misses   int
}

// Stats reports cache usage.
type Stats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

// New creates a Cache holding at most capacity days.
// A capacity <= 0 uses DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[calendar.Date]lunar.Facts),
	}
}

// Load returns the cached facts for d, if present.
func (c *Cache) Load(d calendar.Date) (lunar.Facts, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.entries[d]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return f, ok
}

// Save stores f under its date. When the cache is full it is cleared
// first; views touch a few hundred days at most, so eviction order does
// not matter.
func (c *Cache) Save(f lunar.Facts) {
	if f.Date.IsZero() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[f.Date]; !ok && len(c.entries) >= c.capacity {
		clear(c.entries)
	}
	c.entries[f.Date] = f
}

// Get returns the facts for d, computing and storing them on a miss.
func (c *Cache) Get(d calendar.Date) lunar.Facts {
	if f, ok := c.Load(d); ok {
		return f
	}
	f := lunar.Compute(d)
	c.Save(f)
	return f
}

// Len returns the number of cached days.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
