package e2etest

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/cryptochainz/market-dashboard/config"
)

// TestConfigOptions tweaks the generated configuration
type TestConfigOptions struct {
	CoinsMode  string
	DemoTokens []string
	MaxPerPage int
}

const testConfigTemplate = `
server:
  port: 0
log:
  level: error
cache:
  go_cache:
    enabled: true
    default_expiration: 1m
    cleanup_interval: 5m
http_client:
  connection_timeout: 2s
  request_timeout: 5s
coingecko_coins:
  revalidate: 1m
api_keys:
  nokey:
    rate_limit_per_minute: 6000
    burst: 100
  demo:
    rate_limit_per_minute: 6000
    burst: 100
`

// createTestConfig writes a config file and optional tokens file into dir
func createTestConfig(dir string, opts TestConfigOptions) (string, error) {
	content := testConfigTemplate

	if len(opts.DemoTokens) > 0 {
		tokensPath := filepath.Join(dir, "tokens.json")
		tokens := `{"api_tokens": [], "demo_api_tokens": [`
		for i, token := range opts.DemoTokens {
			if i > 0 {
				tokens += ", "
			}
			tokens += `"` + token + `"`
		}
		tokens += "]}"
		if err := os.WriteFile(tokensPath, []byte(tokens), 0o600); err != nil {
			return "", errors.Wrap(err, "write tokens file")
		}
		content += "tokens_file: \"" + tokensPath + "\"\n"
	}

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		return "", errors.Wrap(err, "write config file")
	}
	return configPath, nil
}

// loadTestConfig loads the generated file and points every service at the mock.
// Environment overrides are applied by the caller through config.Config.ApplyEnv.
func loadTestConfig(dir, mockURL string, opts TestConfigOptions) (*config.Config, error) {
	path, err := createTestConfig(dir, opts)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	env := map[string]string{
		config.EnvMarketsURL: mockURL + "/coins/markets",
		config.EnvCoinsURL:   mockURL,
		config.EnvChartURL:   mockURL,
	}
	if err := cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return nil, err
	}

	if opts.CoinsMode != "" {
		cfg.CoingeckoCoins.Mode = opts.CoinsMode
	}
	cfg.CoingeckoMarkets.MaxPerPage = opts.MaxPerPage
	return cfg, nil
}
