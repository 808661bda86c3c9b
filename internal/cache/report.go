package cache

import (
	"encoding/json"
	"time"

	"github.com/verobrix/verobrix/internal/model"
)

// ReportCache is a typed wrapper that stores authority reports as
// JSON in an underlying Cache.
type ReportCache struct {
	cache Cache
	ttl   time.Duration
}

// NewReportCache creates a report cache over the given byte cache
func NewReportCache(c Cache, ttl time.Duration) *ReportCache {
	return &ReportCache{cache: c, ttl: ttl}
}

// Get returns the cached report for a key, if present and decodable
func (r *ReportCache) Get(key string) (*model.AuthorityReport, bool) {
	data, found := r.cache.Get(key)
	if !found {
		return nil, false
	}
	var report model.AuthorityReport
	if err := json.Unmarshal(data, &report); err != nil {
		_ = r.cache.Delete(key)
		return nil, false
	}
	return &report, true
}

// Set stores a report under the key
func (r *ReportCache) Set(key string, report *model.AuthorityReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.cache.Set(key, data, r.ttl)
}

// Clear drops all cached reports
func (r *ReportCache) Clear() error {
	return r.cache.Clear()
}
