package coingecko_common

import (
	"math"
	"sync"

	"golang.org/x/time/rate"

	"github.com/cryptochainz/market-dashboard/config"
)

// IRateLimiterManager hands out a limiter per API key
//
//go:generate mockgen -destination=mocks/rate_limiter_manager.go . IRateLimiterManager
type IRateLimiterManager interface {
	GetLimiter(key APIKey) *rate.Limiter
	SetConfig(cfg config.APIKeyConfig)
}

// RateLimiterManager keeps one limiter per (key type, key) pair, sized from APIKeyConfig
type RateLimiterManager struct {
	mu       sync.RWMutex
	limiters map[APIKey]*rate.Limiter
	config   config.APIKeyConfig
}

// Defaults in requests per minute, used when config leaves a type at zero
const (
	defaultProRPM   = 500
	defaultDemoRPM  = 30
	defaultNoKeyRPM = 30
)

func NewRateLimiterManager(cfg config.APIKeyConfig) *RateLimiterManager {
	return &RateLimiterManager{
		limiters: make(map[APIKey]*rate.Limiter),
		config:   cfg,
	}
}

// SetConfig applies a new APIKeyConfig and rebuilds limiters whose type settings changed.
func (m *RateLimiterManager) SetConfig(newCfg config.APIKeyConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldCfg := m.config
	m.config = newCfg

	changed := map[KeyType]bool{
		ProKey:  oldCfg.Pro != newCfg.Pro,
		DemoKey: oldCfg.Demo != newCfg.Demo,
		NoKey:   oldCfg.NoKey != newCfg.NoKey,
	}

	for key := range m.limiters {
		if changed[key.Type] {
			m.limiters[key] = m.newLimiterLocked(key.Type)
		}
	}
}

// GetLimiter returns the limiter for key, creating it on first use.
// All unauthenticated requests share one limiter.
func (m *RateLimiterManager) GetLimiter(key APIKey) *rate.Limiter {
	if m == nil {
		return nil
	}
	if key.Key == "" {
		key = APIKey{Type: NoKey}
	}

	m.mu.RLock()
	lim, ok := m.limiters[key]
	m.mu.RUnlock()
	if ok {
		return lim
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.limiters[key]; ok {
		return lim
	}
	lim = m.newLimiterLocked(key.Type)
	m.limiters[key] = lim
	return lim
}

func (m *RateLimiterManager) newLimiterLocked(keyType KeyType) *rate.Limiter {
	settings, fallbackRPM := m.settingsForTypeLocked(keyType)

	rpm := settings.RateLimitPerMinute
	if rpm <= 0 {
		rpm = fallbackRPM
	}
	limit := rate.Limit(float64(rpm) / 60.0)

	burst := settings.Burst
	if burst <= 0 {
		burst = defaultBurstForLimit(limit)
	}
	return rate.NewLimiter(limit, burst)
}

func (m *RateLimiterManager) settingsForTypeLocked(keyType KeyType) (config.RateLimit, int) {
	switch keyType {
	case ProKey:
		return m.config.Pro, defaultProRPM
	case DemoKey:
		return m.config.Demo, defaultDemoRPM
	default:
		return m.config.NoKey, defaultNoKeyRPM
	}
}

func defaultBurstForLimit(limit rate.Limit) int {
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}
