package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryCache is a process-local Cache used when Redis is not configured.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() Cache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
	}
}

func (cache *memoryCache) Save(_ context.Context, key string, value any, duration int) error {
	var payload []byte

	switch v := value.(type) {
	case string:
		payload = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
		payload = encoded
	}

	now := time.Now()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.sweepLocked(now)

	cache.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: now.Add(time.Duration(duration) * time.Second),
	}

	return nil
}

// sweepLocked drops entries whose TTL has passed. The caller holds the write
// lock.
func (cache *memoryCache) sweepLocked(now time.Time) {
	for key, entry := range cache.entries {
		if now.After(entry.expiresAt) {
			delete(cache.entries, key)
		}
	}
}

func (cache *memoryCache) Get(_ context.Context, key string, value any) error {
	cache.mu.RLock()
	entry, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		if ok {
			cache.mu.Lock()
			delete(cache.entries, key)
			cache.mu.Unlock()
		}

		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	switch v := value.(type) {
	case *string:
		*v = string(entry.payload)
	default:
		if err := json.Unmarshal(entry.payload, value); err != nil {
			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}

func (cache *memoryCache) Delete(_ context.Context, key string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	delete(cache.entries, key)

	return nil
}

func (cache *memoryCache) Clear(_ context.Context, prefix string) error {
	prefix = strings.TrimSuffix(prefix, "*")

	cache.mu.Lock()
	defer cache.mu.Unlock()

	for key := range cache.entries {
		if strings.HasPrefix(key, prefix) {
			delete(cache.entries, key)
		}
	}

	return nil
}
