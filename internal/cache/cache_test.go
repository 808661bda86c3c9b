package cache

import (
	"testing"
	"time"

	"github.com/verobrix/verobrix/internal/model"
)

func TestSearchKeyNormalization(t *testing.T) {
	base := SearchKey("commercial jurisdiction", "", "")

	same := []string{
		"Commercial Jurisdiction",
		"  commercial   jurisdiction  ",
		"COMMERCIAL JURISDICTION",
	}
	for _, q := range same {
		if got := SearchKey(q, "", ""); got != base {
			t.Errorf("SearchKey(%q) = %q, want %q", q, got, base)
		}
	}

	if SearchKey("commercial jurisdiction", "commercial", "") == base {
		t.Error("filter change should change the key")
	}
	if SearchKey("other query", "", "") == base {
		t.Error("query change should change the key")
	}
}

func TestSearchKeyPrefix(t *testing.T) {
	key := SearchKey("q", "", "")
	if len(key) < 12 || key[:12] != "verobrix:v1:" {
		t.Errorf("unexpected key format: %q", key)
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("unexpected hit on empty cache")
	}
	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Get = %q, %v", val, found)
	}
	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("value survived Delete")
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("fresh", []byte("a"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("fresh"); !found {
		t.Error("fresh entry missing")
	}

	if err := c.Set("stale", []byte("b"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("stale"); found {
		t.Error("expired entry returned")
	}
}

func TestLayeredPromotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	// write through disk only, simulating a previous run
	disk := NewDiskCache(dir, time.Hour)
	if err := disk.Set("k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("disk Set: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("layered Get = %q, %v", val, found)
	}
	// promoted entry must now come from memory even if disk is cleared
	if err := disk.Clear(); err != nil {
		t.Fatalf("disk Clear: %v", err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("entry not promoted to memory")
	}
}

func TestReportCacheRoundTrip(t *testing.T) {
	rc := NewReportCache(NewMemoryCache(time.Minute, time.Minute), time.Minute)

	report := &model.AuthorityReport{
		Query:   "without prejudice",
		Summary: "2 relevant authorities",
		CaseLaw: []model.RelevanceMatch{
			{Record: model.Record{Kind: model.KindCaseLaw, Name: "Hale v. Henkel"}, Score: 1.4},
		},
	}
	key := SearchKey(report.Query, "", "")
	if err := rc.Set(key, report); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found := rc.Get(key)
	if !found {
		t.Fatal("report not found")
	}
	if got.Query != report.Query || len(got.CaseLaw) != 1 {
		t.Errorf("round trip mangled report: %+v", got)
	}
	if got.CaseLaw[0].Score != 1.4 {
		t.Errorf("score = %v", got.CaseLaw[0].Score)
	}
}

func TestReportCacheCorruptEntry(t *testing.T) {
	mem := NewMemoryCache(time.Minute, time.Minute)
	rc := NewReportCache(mem, time.Minute)

	key := SearchKey("q", "", "")
	if err := mem.Set(key, []byte("{not json"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := rc.Get(key); found {
		t.Error("corrupt entry should be a miss")
	}
	// corrupt entry is evicted
	if _, found := mem.Get(key); found {
		t.Error("corrupt entry not evicted")
	}
}
