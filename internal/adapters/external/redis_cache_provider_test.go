package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/config"
	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	return mockRedis, &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
}

func newRedisAdapter(t *testing.T) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	mockRedis, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return mockRedis, adapter
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name        string
		config      func() *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      func() *config.RedisConfig { return nil },
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func() *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
		},
		{
			name: "UnreachableServer",
			config: func() *config.RedisConfig {
				return &config.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
			},
			expectError: true,
			errorType:   errors.ErrorTypeDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config())

			if tt.expectError {
				assert.Nil(t, adapter)
				var appErr *errors.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, tt.errorType, appErr.Type)
				}
				return
			}

			require.NoError(t, err)
			assert.NoError(t, adapter.Close())
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, adapter := newRedisAdapter(t)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "weather:current", []byte(`{"name":"Moscow"}`), time.Minute))

		retrieved, err := adapter.Get(ctx, "weather:current")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"name":"Moscow"}`), retrieved)
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "missing")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ZeroTTLNeverExpires", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "forever", []byte("v"), 0))

		mockRedis.FastForward(24 * time.Hour)

		retrieved, err := adapter.Get(ctx, "forever")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), retrieved)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("v"), 100*time.Millisecond))

		mockRedis.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "delete-key", []byte("v"), time.Minute))

		exists, err := adapter.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, adapter.Delete(ctx, "delete-key"))

		exists, err = adapter.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "a", []byte("1"), 0))
		require.NoError(t, adapter.Clear(ctx))

		exists, err := adapter.Exists(ctx, "a")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, adapter.Ping(ctx))
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, adapter := newRedisAdapter(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := adapter.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return adapter.Set(ctx, "", []byte("v"), time.Minute) }},
		{"SetNilValue", func() error { return adapter.Set(ctx, "key", nil, time.Minute) }},
		{"SetNegativeTTL", func() error { return adapter.Set(ctx, "key", []byte("v"), -time.Minute) }},
		{"DeleteEmptyKey", func() error { return adapter.Delete(ctx, "") }},
		{"ExistsEmptyKey", func() error { _, err := adapter.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestRedisCacheProviderAdapter_Stats(t *testing.T) {
	_, adapter := newRedisAdapter(t)
	ctx := context.Background()

	stats := adapter.GetStats()
	assert.Zero(t, stats.TotalOps)
	assert.Zero(t, stats.HitRatio)

	require.NoError(t, adapter.Set(ctx, "key", []byte("v"), time.Minute))
	_, err := adapter.Get(ctx, "key")
	require.NoError(t, err)
	_, err = adapter.Get(ctx, "missing")
	require.Error(t, err)
	_, err = adapter.Get(ctx, "key")
	require.NoError(t, err)

	stats = adapter.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 1e-9)
}

func TestRedisCacheProviderAdapter_CancelledContext(t *testing.T) {
	_, adapter := newRedisAdapter(t)
	var _ ports.CacheProvider = adapter

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Get(ctx, "key")
	assert.True(t, errors.IsDatabaseError(err))
	assert.Error(t, adapter.Set(ctx, "key", []byte("v"), time.Minute))
	assert.Error(t, adapter.Clear(ctx))
}

func TestRedisCacheProviderAdapter_BinaryData(t *testing.T) {
	_, adapter := newRedisAdapter(t)
	ctx := context.Background()

	binaryData := []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD, 0x00, 0x00}
	require.NoError(t, adapter.Set(ctx, "binary", binaryData, time.Minute))

	retrieved, err := adapter.Get(ctx, "binary")
	require.NoError(t, err)
	assert.Equal(t, binaryData, retrieved)
}
