package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func expiredEntry() memoryEntry {
	return memoryEntry{payload: []byte(`"stale"`), expiresAt: time.Now().Add(-time.Second)}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Save(ctx, "room:get:r1", "cached", 60); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var out string
	if err := c.Get(ctx, "room:get:r1", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if out != "cached" {
		t.Errorf("expected cached, got %s", out)
	}

	if err := c.Get(ctx, "room:get:missing", &out); !errors.Is(err, Nil) {
		t.Errorf("expected Nil for a missing key, got %v", err)
	}
}

func TestMemoryCache_SaveSweepsExpiredEntries(t *testing.T) {
	c := NewMemoryCache().(*memoryCache)
	ctx := context.Background()

	c.entries["stale"] = expiredEntry()

	if err := c.Save(ctx, "fresh", "v", 60); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	c.mu.RLock()
	_, staleKept := c.entries["stale"]
	_, freshKept := c.entries["fresh"]
	c.mu.RUnlock()

	if staleKept {
		t.Error("expected the expired entry to be swept on write")
	}

	if !freshKept {
		t.Error("expected the fresh entry to be stored")
	}
}

func TestMemoryCache_GetDropsExpiredEntry(t *testing.T) {
	c := NewMemoryCache().(*memoryCache)
	ctx := context.Background()

	c.entries["stale"] = expiredEntry()

	var out string
	if err := c.Get(ctx, "stale", &out); !errors.Is(err, Nil) {
		t.Fatalf("expected Nil for an expired key, got %v", err)
	}

	c.mu.RLock()
	_, kept := c.entries["stale"]
	c.mu.RUnlock()

	if kept {
		t.Error("expected the expired entry to be removed on read")
	}
}

func TestMemoryCache_ClearPrefix(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Save(ctx, "room:gets:a", "v", 60); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := c.Save(ctx, "booking:gets:a", "v", 60); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := c.Clear(ctx, "room:gets*"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	var out string
	if err := c.Get(ctx, "room:gets:a", &out); !errors.Is(err, Nil) {
		t.Errorf("expected cleared key to be gone, got %v", err)
	}

	if err := c.Get(ctx, "booking:gets:a", &out); err != nil {
		t.Errorf("expected other prefix to survive, got %v", err)
	}
}
