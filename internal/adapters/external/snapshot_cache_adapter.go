package external

import (
	"context"
	"encoding/json"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

const snapshotCacheKey = "weather:" + ports.SnapshotID

// SnapshotCacheAdapter bridges a generic CacheProvider to the single-row SnapshotStore
type SnapshotCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewSnapshotCacheAdapter creates a snapshot store backed by a key/value cache
func NewSnapshotCacheAdapter(cacheProvider ports.CacheProvider) *SnapshotCacheAdapter {
	return &SnapshotCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Put replaces the stored snapshot; the entry never expires
func (a *SnapshotCacheAdapter) Put(ctx context.Context, snapshot *ports.WeatherSnapshot) error {
	if snapshot == nil {
		return errors.NewValidationError("weather snapshot cannot be nil")
	}

	stored := *snapshot
	stored.ID = ports.SnapshotID

	data, err := json.Marshal(&stored)
	if err != nil {
		return errors.NewDatabaseError("failed to serialize weather snapshot", err)
	}

	return a.cacheProvider.Set(ctx, snapshotCacheKey, data, 0)
}

// Get returns the stored snapshot or a NotFound error
func (a *SnapshotCacheAdapter) Get(ctx context.Context) (*ports.WeatherSnapshot, error) {
	data, err := a.cacheProvider.Get(ctx, snapshotCacheKey)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no cached weather snapshot")
		}
		return nil, err
	}

	var snapshot ports.WeatherSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.NewDatabaseError("failed to deserialize weather snapshot", err)
	}

	return &snapshot, nil
}

func (a *SnapshotCacheAdapter) Exists(ctx context.Context) (bool, error) {
	return a.cacheProvider.Exists(ctx, snapshotCacheKey)
}

func (a *SnapshotCacheAdapter) Clear(ctx context.Context) error {
	return a.cacheProvider.Delete(ctx, snapshotCacheKey)
}
