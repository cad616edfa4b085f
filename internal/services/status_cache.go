package services

import (
	"sync"
	"time"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// CacheEntry is the last computed status of a session and when it was stored
type CacheEntry struct {
	CheckedAt time.Time
	Status    domain.GitStatus
}

// StatusCache holds one entry per session key with TTL-bounded freshness
type StatusCache struct {
	clock   clock.Clock
	entries map[string]CacheEntry
	mu      sync.RWMutex
	ttl     time.Duration
}

// NewStatusCache creates an empty cache
func NewStatusCache(clk clock.Clock, ttl time.Duration) *StatusCache {
	return &StatusCache{
		clock:   clk,
		entries: make(map[string]CacheEntry),
		ttl:     ttl,
	}
}

// Get returns the entry for key regardless of age
func (c *StatusCache) Get(key string) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Fresh returns the cached status when it is younger than the TTL
func (c *StatusCache) Fresh(key string) (domain.GitStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || c.clock.Now().Sub(entry.CheckedAt) >= c.ttl {
		return domain.GitStatus{}, false
	}
	return entry.Status, true
}

// Put stores status for key stamped with the current time. Returns true
// when the stored content differs from the previous entry.
func (c *StatusCache) Put(key string, status domain.GitStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, existed := c.entries[key]
	c.entries[key] = CacheEntry{CheckedAt: c.clock.Now(), Status: status}
	return !existed || !prev.Status.Equal(status)
}

// Touch restamps an existing entry as freshly checked
func (c *StatusCache) Touch(key string) (domain.GitStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return domain.GitStatus{}, false
	}
	entry.CheckedAt = c.clock.Now()
	entry.Status.LastChecked = entry.CheckedAt
	c.entries[key] = entry
	return entry.Status, true
}

// Invalidate drops the entry for key
func (c *StatusCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll drops every entry
func (c *StatusCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]CacheEntry)
}

// Snapshot copies all cached statuses
func (c *StatusCache) Snapshot() map[string]domain.GitStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.GitStatus, len(c.entries))
	for key, entry := range c.entries {
		out[key] = entry.Status
	}
	return out
}
