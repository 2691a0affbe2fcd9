package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var TimeNow = time.Now

// Kind of cached entity. One cache key exists per (kind, ref, chain id).
const (
	KindUser             = "user"
	KindTransaction      = "transaction"
	KindApproval         = "approval"
	KindUserTransactions = "user_transactions"
	KindAllTransactions  = "all_transactions"
	KindPendingApprovals = "pending_approvals"
	KindMetrics          = "metrics"
)

type Key struct {
	Kind    string
	Ref     string
	ChainID uint64
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%d", k.Kind, k.Ref, k.ChainID)
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache is a read-through cache with per-read TTLs. Concurrent fetches for
// one key are collapsed to a single in-flight read; invalidation is
// idempotent and commutative, so event handlers may fire in any order and
// more than once. A per-key generation counter keeps an invalidation that
// lands mid-fetch from being overwritten by the stale in-flight result.
type Cache struct {
	logs *zap.SugaredLogger

	mu       sync.RWMutex
	entries  map[Key]entry
	gens     map[Key]uint64
	kindGens map[string]uint64
	group    singleflight.Group
}

func NewCache(logger *zap.SugaredLogger) *Cache {
	return &Cache{
		logs:     logger,
		entries:  make(map[Key]entry),
		gens:     make(map[Key]uint64),
		kindGens: make(map[string]uint64),
	}
}

// GetOrFetch returns the cached value when it is younger than ttl, otherwise
// runs fetch and caches its result. A failed fetch caches nothing, and a
// fetch overtaken by an invalidation is returned but not stored.
func (c *Cache) GetOrFetch(ctx context.Context, key Key, ttl time.Duration, fetch func(ctx context.Context) (any, error)) (any, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && TimeNow().Sub(cached.fetchedAt) < ttl {
		return cached.value, nil
	}

	value, err, _ := c.group.Do(key.String(), func() (any, error) {
		// a concurrent fetch may have refreshed the entry already
		c.mu.RLock()
		cached, ok := c.entries[key]
		gen := c.gens[key]
		kindGen := c.kindGens[key.Kind]
		c.mu.RUnlock()
		if ok && TimeNow().Sub(cached.fetchedAt) < ttl {
			return cached.value, nil
		}

		fetched, err := fetch(ctx)
		if err != nil {
			c.logs.Errorw("cache fetch failed", "key", key.String(), "error", err)
			return nil, err
		}

		c.mu.Lock()
		if c.gens[key] == gen && c.kindGens[key.Kind] == kindGen {
			c.entries[key] = entry{value: fetched, fetchedAt: TimeNow()}
		}
		c.mu.Unlock()

		return fetched, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key.String(), err)
	}

	return value, nil
}

// Invalidate drops entries so the next read bypasses the cache. Bumping the
// generation discards any fetch that started before the invalidation.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gens[key]++
	}
}

// InvalidateKind drops every entry of one kind regardless of ref. The kind
// generation covers in-flight fetches for refs that have no entry yet.
func (c *Cache) InvalidateKind(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.Kind == kind {
			delete(c.entries, key)
		}
	}
	c.kindGens[kind]++
}
