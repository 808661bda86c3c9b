package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds serialized search reports in process memory.
// Expiry rides on go-cache's TTL sweep, so one interactive session
// reuses its own lookups without touching disk.
type MemoryCache struct {
	reports *gocache.Cache
}

// NewMemoryCache creates an in-memory report cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		reports: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns the serialized report stored under key
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.reports.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a serialized report, a zero ttl meaning the default
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.reports.Set(key, value, ttl)
	return nil
}

// Delete drops one report
func (c *MemoryCache) Delete(key string) error {
	c.reports.Delete(key)
	return nil
}

// Clear drops every cached report
func (c *MemoryCache) Clear() error {
	c.reports.Flush()
	return nil
}
