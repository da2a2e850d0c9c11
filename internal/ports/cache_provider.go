package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for raw key/value caching operations.
// A zero ttl stores the value without expiration.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// SnapshotStore keeps exactly one current weather snapshot.
// Get returns a NotFound error when nothing has been stored.
type SnapshotStore interface {
	Put(ctx context.Context, snapshot *WeatherSnapshot) error
	Get(ctx context.Context) (*WeatherSnapshot, error)
	Exists(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}
