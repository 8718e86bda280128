package cache

import "time"

// Config represents cache configuration
type Config struct {
	GoCache GoCacheConfig `yaml:"go_cache"`

	// StatsInterval is how often the cache size gauge is refreshed. 0 disables it.
	StatsInterval time.Duration `yaml:"stats_interval"`
}

// GoCacheConfig configuration for in-memory go-cache
type GoCacheConfig struct {
	// DefaultExpiration applies when Set is called with ttl 0.
	// If 0, items never expire by default
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for purging expired items
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled whether values are stored at all
	Enabled bool `yaml:"enabled"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			DefaultExpiration: time.Minute,
			CleanupInterval:   5 * time.Minute,
			Enabled:           true,
		},
		StatsInterval: 30 * time.Second,
	}
}
