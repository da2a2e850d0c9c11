package external

import (
	"fmt"

	"allweather.app/internal/config"
	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// CacheProviderFactory builds key/value cache backends from configuration.
// The database backend is served by the snapshot repository instead.
type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type for key/value provider: %s", cfg.Type.String()), nil)
	}
}
