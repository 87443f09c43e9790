package cache

import (
	"context"
	"sync"
	"time"

	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// DefaultMaxEntries bounds a memory cache created without an explicit limit
const DefaultMaxEntries = 100_000

// MemoryCache is an in-memory implementation of the ScoreCache interface.
// It holds at most maxEntries entries; when full, expired entries are dropped
// first and then the entry closest to expiry is evicted.
type MemoryCache struct {
	entries     map[string]core.ScoreEntry
	maxEntries  int
	mu          sync.RWMutex
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup task.
// A non-positive maxEntries selects DefaultMaxEntries.
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	cache := &MemoryCache{
		entries:     make(map[string]core.ScoreEntry),
		maxEntries:  maxEntries,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
		now:         time.Now,
	}

	go cache.startCleanupTask()

	return cache
}

// Get retrieves a cached entry
func (c *MemoryCache) Get(_ context.Context, key string) (*core.ScoreEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	if !c.now().Before(entry.ExpiresAt) {
		return nil, ErrExpired
	}
	return &entry, nil
}

// Set stores a cache entry
func (c *MemoryCache) Set(_ context.Context, entry *core.ScoreEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[entry.Key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[entry.Key] = *entry
	return nil
}

// evictLocked frees at least one slot. Callers hold c.mu.
func (c *MemoryCache) evictLocked() {
	now := c.now()
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, e := range c.entries {
		if !now.Before(e.ExpiresAt) {
			delete(c.entries, key)
			continue
		}
		if oldestKey == "" || e.ExpiresAt.Before(oldest) {
			oldestKey, oldest = key, e.ExpiresAt
		}
	}
	if len(c.entries) >= c.maxEntries && oldestKey != "" {
		delete(c.entries, oldestKey)
		c.logger.Debug("Evicted cache entry", zap.String("key", oldestKey))
	}
}

// Delete removes a cache entry
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Cleanup removes expired entries
func (c *MemoryCache) Cleanup(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	expiredCount := 0
	for key, entry := range c.entries {
		if !now.Before(entry.ExpiresAt) {
			delete(c.entries, key)
			expiredCount++
		}
	}

	c.logger.Debug("Cleaned up expired cache entries", zap.Int("expired_count", expiredCount))
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task
func (c *MemoryCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}
