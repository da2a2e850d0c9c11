package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/config"
	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()

	t.Run("NilConfig", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(nil)
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Memory", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCacheProvider{}, provider)
	})

	t.Run("Redis", func(t *testing.T) {
		_, redisConfig := setupMockRedis(t)
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisConfig})
		require.NoError(t, err)
		require.IsType(t, &RedisCacheProviderAdapter{}, provider)
		assert.NoError(t, provider.(*RedisCacheProviderAdapter).Close())
	})

	for _, cacheType := range []config.CacheType{config.CacheTypeDatabase, config.CacheTypeUnknown} {
		t.Run("Unsupported_"+cacheType.String(), func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: cacheType})
			assert.Nil(t, provider)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	cache := NewMemoryCacheProvider()
	var _ ports.CacheProvider = cache
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "key", []byte("value"), time.Minute))

		value, err := cache.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("ReturnedSliceIsACopy", func(t *testing.T) {
		original := []byte("abc")
		require.NoError(t, cache.Set(ctx, "copy", original, 0))
		original[0] = 'z'

		value, err := cache.Get(ctx, "copy")
		require.NoError(t, err)
		value[1] = 'z'

		again, err := cache.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Expiration", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", []byte("v"), 20*time.Millisecond))
		time.Sleep(40 * time.Millisecond)

		_, err := cache.Get(ctx, "short")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteExistsClear", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, cache.Set(ctx, "b", []byte("2"), 0))

		exists, err := cache.Exists(ctx, "a")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, cache.Delete(ctx, "a"))
		exists, err = cache.Exists(ctx, "a")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, cache.Clear(ctx))
		exists, err = cache.Exists(ctx, "b")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := cache.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return cache.Set(ctx, "", []byte("v"), time.Minute) }},
		{"SetNilValue", func() error { return cache.Set(ctx, "key", nil, time.Minute) }},
		{"SetNegativeTTL", func() error { return cache.Set(ctx, "key", []byte("v"), -time.Second) }},
		{"DeleteEmptyKey", func() error { return cache.Delete(ctx, "") }},
		{"ExistsEmptyKey", func() error { _, err := cache.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestMemoryCacheProvider_Stats(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", []byte("v"), 0))
	_, _ = cache.Get(ctx, "key")
	_, _ = cache.Get(ctx, "missing")

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(2), stats.TotalOps)
	assert.Equal(t, 0.5, stats.HitRatio)
}
