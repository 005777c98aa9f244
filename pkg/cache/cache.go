package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value   any
	savedAt time.Time
}

// Cache is a read-through TTL cache. It is a constructed instance, not
// package state; each surface builds its own with the lifecycle it needs.
// TTL 0 means entries never expire on their own and must be invalidated
// explicitly (the cart cache works this way).
//
// Misses are loaded through singleflight so concurrent callers for the
// same key share one fetch. Failed loads are not cached.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	group   singleflight.Group

	now func() time.Time // injectable for tests
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.savedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: v, savedAt: c.now()}
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// GetOrLoad returns the cached value, or runs load once (deduplicated
// across concurrent callers) and caches its result on success.
func (c *Cache) GetOrLoad(key string, load func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		// another caller may have filled the entry while we waited
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		c.Put(key, v)
		return v, nil
	})
	return v, err
}
