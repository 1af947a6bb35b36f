// Package cache provides a small thread-safe in-memory cache with
// hit/miss statistics. It has no eviction policy: entries live until
// deleted or cleared, which fits bounded working sets like the
// translator's reverse-lookup table.
package cache

import "sync"

// Cache is a concurrency-safe string-keyed cache.
type Cache[V any] struct {
	mu    sync.RWMutex
	items map[string]V
	stats Statistics
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{items: make(map[string]V)}
}

// Get retrieves a value by key. Lookups are always tracked in the
// cache statistics.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	c.stats.record(ok)
	return value, ok
}

// Set stores a value under the key, replacing any existing entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.items[key] = value
	c.mu.Unlock()
}

// Delete removes a key. Reports whether an entry existed.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	delete(c.items, key)
	return ok
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]V)
	c.mu.Unlock()
}

// Stats returns a snapshot of the hit/miss counters.
func (c *Cache[V]) Stats() StatsSnapshot {
	return c.stats.snapshot()
}
