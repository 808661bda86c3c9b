package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists search reports across runs, one file per query
// key. Each stored report carries its own expiry so a stale file is
// dropped on read, not on a timer.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk-backed report cache rooted at dir
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
	}
}

// storedReport wraps a serialized report with its expiry on disk
type storedReport struct {
	Report    []byte    `json:"report"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get reads the report stored under key, removing it when expired
func (c *DiskCache) Get(key string) ([]byte, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var stored storedReport
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, false
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	return stored.Report, true
}

// Set writes a serialized report under key, a zero ttl meaning the
// cache default
func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	stored := storedReport{
		Report:    value,
		ExpiresAt: time.Now().Add(ttl),
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	path := c.path(key)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	return nil
}

// Delete removes the report stored under key
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes the whole on-disk report store
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".report")
}
