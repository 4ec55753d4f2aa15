// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package cache

import (
	"sync"
	"testing"
	"time"
)

// fakeClock steps time manually so expiry tests never sleep.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestGetSetBasic(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache reported a hit")
	}

	c.Set("key", "value")
	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.(string) != "value" {
		t.Errorf("got %v", got)
	}
}

func TestEntryExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(6*time.Hour, clock.Now)

	c.Set("steam-123", "summary")

	clock.Advance(6*time.Hour - time.Second)
	if _, ok := c.Get("steam-123"); !ok {
		t.Error("entry expired before its TTL")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("steam-123"); ok {
		t.Error("entry survived past its TTL")
	}

	stats := c.Stats()
	if stats.Evictions != 1 {
		t.Errorf("evictions = %d, want 1", stats.Evictions)
	}
	if stats.Size != 0 {
		t.Errorf("size = %d, want 0", stats.Size)
	}
}

func TestSetWithTTLOverridesDefault(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	c.SetWithTTL("short", "v", time.Minute)
	c.Set("long", "v")

	clock.Advance(2 * time.Minute)
	if _, ok := c.Get("short"); ok {
		t.Error("short-TTL entry survived")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("default-TTL entry expired early")
	}
}

func TestOverwriteResetsExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	c.Set("key", "v1")
	clock.Advance(50 * time.Minute)
	c.Set("key", "v2")
	clock.Advance(50 * time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("overwritten entry expired on the old clock")
	}
	if got.(string) != "v2" {
		t.Errorf("got %v, want v2", got)
	}
}

func TestDeleteAndClear(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("cleared entry still present")
	}
	if c.Stats().Size != 0 {
		t.Error("size nonzero after clear")
	}
}

func TestStatsCounters(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(time.Hour, clock.Now)

	c.Set("key", "v")
	c.Get("key")
	c.Get("key")
	c.Get("missing")

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("misses = %d, want 1", stats.Misses)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Hour)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("key", j)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Get("key")
			}
		}()
	}
	wg.Wait()
}
