// Package cache provides a bounded TTL cache for remote-data lookups.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultTTL is how long a cached remote result stays fresh.
	DefaultTTL = time.Hour

	// DefaultCapacity bounds each cache so distinct query keys cannot grow
	// the map for the lifetime of the process.
	DefaultCapacity = 512
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a capacity-bounded key-value store where entries expire after a
// fixed TTL. The key is a composite string built deterministically from the
// query parameters of the lookup it memoizes. Least-recently-used entries are
// evicted when the capacity is reached; expired entries are shadowed on read
// and lazily overwritten by the next Put, never proactively swept.
//
// Safe for concurrent use.
type Cache[V any] struct {
	entries *lru.Cache[string, entry[V]]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache holding up to capacity entries with the given TTL.
// Non-positive arguments fall back to the defaults.
func New[V any](capacity int, ttl time.Duration) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	entries, _ := lru.New[string, entry[V]](capacity)
	return &Cache[V]{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key. A key that was never stored and a key
// whose entry has aged past the TTL are indistinguishable to the caller.
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.entries.Get(key)
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, overwriting unconditionally and resetting the
// entry's timestamp.
func (c *Cache[V]) Put(key string, value V) {
	c.entries.Add(key, entry[V]{value: value, storedAt: c.now()})
}

// Len returns the number of entries currently held, stale ones included.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}
