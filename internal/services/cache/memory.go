package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultTTL = 10 * time.Minute

// MemoryCache is a process-local TTL cache bounded by entry count
type MemoryCache struct {
	mu         sync.RWMutex
	items      map[string]memoryItem
	maxEntries int

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type memoryItem struct {
	value  []byte
	expiry time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries items (0 = unbounded)
// and sweeps expired items every cleanupInterval.
func NewMemoryCache(maxEntries int, cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	mc := &MemoryCache{
		items:      make(map[string]memoryItem),
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}

	mc.wg.Add(1)
	go mc.sweep(cleanupInterval)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, ok := mc.items[key]
	mc.mu.RUnlock()

	if !ok || time.Now().After(item.expiry) {
		mc.misses.Add(1)
		return nil, false
	}

	mc.hits.Add(1)
	return item.value, true
}

// Set stores a value, evicting the entry closest to expiry when full
func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.items[key]; !exists && mc.maxEntries > 0 && len(mc.items) >= mc.maxEntries {
		mc.evictLocked()
	}

	mc.items[key] = memoryItem{value: value, expiry: time.Now().Add(ttl)}
	mc.sets.Add(1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.RLock()
	entries := int64(len(mc.items))
	mc.mu.RUnlock()

	return Stats{
		Hits:      mc.hits.Load(),
		Misses:    mc.misses.Load(),
		Sets:      mc.sets.Load(),
		Evictions: mc.evictions.Load(),
		Entries:   entries,
	}
}

// Close stops the sweeper; safe to call more than once
func (mc *MemoryCache) Close() error {
	mc.stopOnce.Do(func() {
		close(mc.stopCh)
	})
	mc.wg.Wait()
	return nil
}

func (mc *MemoryCache) sweep(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.removeExpired()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpired() {
	now := time.Now()
	mc.mu.Lock()
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			mc.evictions.Add(1)
		}
	}
	mc.mu.Unlock()
}

// evictLocked drops the item that expires first. Caller holds mu.
func (mc *MemoryCache) evictLocked() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, item := range mc.items {
		if !found || item.expiry.Before(oldest) {
			victim, oldest, found = key, item.expiry, true
		}
	}
	if found {
		delete(mc.items, victim)
		mc.evictions.Add(1)
	}
}
