package cache

import (
	"context"
	"sync"
	"time"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
)

// MemoryCache is the in-process SnapshotCache used when no Redis is
// configured. Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	table     *model.PriceTable
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (*model.PriceTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, nil
	}

	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}

	return entry.table, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, table *model.PriceTable, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		table:     table,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}
