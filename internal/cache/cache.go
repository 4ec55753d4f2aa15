// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package cache provides a small in-memory TTL cache for provider
// responses. Entries expire lazily on read and in a periodic cleanup pass.
package cache

import (
	"sync"
	"time"
)

// Cache is a thread-safe in-memory cache with per-entry expiry.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]*item
	defaultTTL time.Duration

	// now is injectable so tests can step time without sleeping.
	now func() time.Time

	stopCleanup chan struct{}
	stopOnce    sync.Once

	hits      uint64
	misses    uint64
	evictions uint64
}

type item struct {
	value     interface{}
	expiresAt time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	Size      int    `json:"size"`
}

// New creates a cache with the given default TTL and starts a background
// cleanup loop. Call Stop when the cache is no longer needed.
func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		items:       make(map[string]*item),
		defaultTTL:  defaultTTL,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// NewWithClock creates a cache with an injected clock and no background
// cleanup loop. Expired entries are still evicted lazily on read.
func NewWithClock(defaultTTL time.Duration, now func() time.Time) *Cache {
	return &Cache{
		items:       make(map[string]*item),
		defaultTTL:  defaultTTL,
		now:         now,
		stopCleanup: make(chan struct{}),
	}
}

// Get returns the value for key and whether it was present and unexpired.
// Expired entries are evicted on access.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	if ok && c.now().Before(it.expiresAt) {
		c.mu.RUnlock()
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return it.value, true
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if it, ok := c.items[key]; ok && !c.now().Before(it.expiresAt) {
		delete(c.items, key)
		c.evictions++
	}
	c.misses++
	return nil, false
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = &item{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*item)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
	}
}

// Stop terminates the background cleanup loop. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCleanup)
	})
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *Cache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, it := range c.items {
		if !now.Before(it.expiresAt) {
			delete(c.items, key)
			c.evictions++
		}
	}
}
