package external

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

const memoryCleanupInterval = 10 * time.Minute

// MemoryCacheProvider implements CacheProvider on top of go-cache
type MemoryCacheProvider struct {
	cache  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemoryCacheProvider creates an in-process cache whose entries never expire by default
func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		cache: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	item, found := c.cache.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, errors.NewNotFoundError("cache miss")
	}

	data, ok := item.([]byte)
	if !ok {
		c.misses.Add(1)
		return nil, errors.NewDatabaseError("unexpected value type in memory cache", nil)
	}

	c.hits.Add(1)
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores value under key; a zero ttl keeps it until deleted
func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("cache TTL cannot be negative")
	}

	expiration := gocache.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(key, stored, expiration)
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.cache.Delete(key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	_, found := c.cache.Get(key)
	return found, nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.cache.Flush()
	return nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
