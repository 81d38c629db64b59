package cache

import (
	"sync"

	"github.com/hassankhalil8/FLE-email-extractor-pipeline/internal/core"
	"go.uber.org/zap"
)

// MemoryCache is an in-memory implementation of the
// core.DeliverabilityCache interface. Entries live for the lifetime of
// the owning checker and are never evicted: stale DNS data is accepted
// in exchange for one lookup per domain.
type MemoryCache struct {
	entries map[string]core.DeliverabilityInfo
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewMemoryCache creates a new in-memory deliverability cache
func NewMemoryCache(logger *zap.Logger) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]core.DeliverabilityInfo),
		logger:  logger,
	}
}

// Get retrieves the cached outcome for a lower-cased domain
func (c *MemoryCache) Get(domain string) (core.DeliverabilityInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[domain]
	return info, ok
}

// Set stores the outcome for a lower-cased domain
func (c *MemoryCache) Set(domain string, info core.DeliverabilityInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[domain] = info
}

// Len reports how many domains have been resolved so far
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
