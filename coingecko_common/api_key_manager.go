package coingecko_common

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/config"
)

// KeyType defines the API key type
type KeyType int

const (
	// NoKey means the request goes out unauthenticated
	NoKey KeyType = iota
	ProKey
	DemoKey
)

func (t KeyType) String() string {
	switch t {
	case ProKey:
		return "pro"
	case DemoKey:
		return "demo"
	default:
		return "none"
	}
}

// APIKey represents an API key with its type
type APIKey struct {
	Key  string
	Type KeyType
}

// Header returns the authentication header for the key, or empty strings for NoKey.
func (k APIKey) Header() (string, string) {
	switch {
	case k.Key == "":
		return "", ""
	case k.Type == ProKey:
		return ProAPIKeyHeader, k.Key
	case k.Type == DemoKey:
		return DemoAPIKeyHeader, k.Key
	}
	return "", ""
}

// IAPIKeyManager defines the interface for API key management
//
//go:generate mockgen -destination=mocks/api_key_manager.go . IAPIKeyManager
type IAPIKeyManager interface {
	// SelectKey returns the preferred key for the next request: the first
	// pro key not in backoff, then demo keys, then NoKey.
	SelectKey() APIKey

	// MarkKeyAsFailed puts a key in backoff
	MarkKeyAsFailed(key string)
}

// APIKeyManager implements IAPIKeyManager for CoinGecko
type APIKeyManager struct {
	apiTokens   *config.APITokens
	lastFailed  map[string]time.Time
	backoffTime time.Duration
	mu          sync.RWMutex
	logger      *zap.Logger
}

func NewAPIKeyManager(apiTokens *config.APITokens, logger *zap.Logger) *APIKeyManager {
	return &APIKeyManager{
		apiTokens:   apiTokens,
		lastFailed:  make(map[string]time.Time),
		backoffTime: 5 * time.Minute,
		logger:      logger.Named("api_keys"),
	}
}

func (m *APIKeyManager) isKeyInBackoff(key string) bool {
	if key == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if lastFailTime, exists := m.lastFailed[key]; exists {
		return time.Since(lastFailTime) < m.backoffTime
	}
	return false
}

func (m *APIKeyManager) getKeysOfType(keyType KeyType) []string {
	if m.apiTokens == nil {
		return nil
	}

	switch keyType {
	case ProKey:
		return m.apiTokens.Tokens
	case DemoKey:
		return m.apiTokens.DemoTokens
	}
	return nil
}

// GetAvailableKeys lists usable keys in preference order:
//   - pro keys not in backoff; a single pro key is kept even in backoff
//   - demo keys not in backoff
//   - NoKey, always last
func (m *APIKeyManager) GetAvailableKeys() []APIKey {
	var availableKeys []APIKey

	proKeys := m.getKeysOfType(ProKey)
	if len(proKeys) == 1 {
		availableKeys = append(availableKeys, APIKey{Key: proKeys[0], Type: ProKey})
	} else {
		for _, key := range proKeys {
			if !m.isKeyInBackoff(key) {
				availableKeys = append(availableKeys, APIKey{Key: key, Type: ProKey})
			}
		}
	}

	for _, key := range m.getKeysOfType(DemoKey) {
		if !m.isKeyInBackoff(key) {
			availableKeys = append(availableKeys, APIKey{Key: key, Type: DemoKey})
		}
	}

	return append(availableKeys, APIKey{Key: "", Type: NoKey})
}

func (m *APIKeyManager) SelectKey() APIKey {
	return m.GetAvailableKeys()[0]
}

func (m *APIKeyManager) MarkKeyAsFailed(key string) {
	if key == "" {
		return
	}

	m.mu.Lock()
	m.lastFailed[key] = time.Now()
	m.mu.Unlock()

	m.logger.Warn("api key put in backoff", zap.Duration("backoff", m.backoffTime))
}
