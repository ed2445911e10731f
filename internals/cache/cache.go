// Package cache is a per-process response cache: a map from entity id to
// the reshaped payload plus the wall-clock instant it was stored. Entries
// older than the window count as misses and are overwritten on refetch.
//
// Deliberately minimal: no size eviction, no persistence, no cross-process
// sharing. Correctness assumes a single process instance; that is the
// stated simplicity/availability tradeoff of the deployment model.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	data interface{}
	ts   time.Time
}

type Cache struct {
	mu     sync.RWMutex
	window time.Duration
	items  map[string]entry

	now func() time.Time // overridable in tests
}

func New(window time.Duration) *Cache {
	return &Cache{
		window: window,
		items:  make(map[string]entry),
		now:    time.Now,
	}
}

// Get returns the cached value when present and younger than the window.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.ts) >= c.window {
		return nil, false
	}
	return e.data, true
}

// Set unconditionally overwrites the entry for key.
func (c *Cache) Set(key string, data interface{}) {
	c.mu.Lock()
	c.items[key] = entry{data: data, ts: c.now()}
	c.mu.Unlock()
}

// Invalidate drops the entry for key, if any. Used after writes so a
// subsequent read does not serve a stale profile for the full window.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}
