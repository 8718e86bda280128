package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cryptochainz/market-dashboard/cache"
)

// Environment variables that override values from the YAML file.
const (
	EnvMarketsURL = "COINGECKO_API_URL"
	EnvCoinsURL   = "COIN_API_URL"
	EnvChartURL   = "COIN_CHART_API_URL"
	EnvPort       = "PORT"
	EnvLogLevel   = "LOG_LEVEL"
)

const DefaultPort = 8080

type Config struct {
	Server               ServerConfig               `yaml:"server"`
	Log                  LogConfig                  `yaml:"log"`
	Cache                cache.Config               `yaml:"cache"`
	HTTPClient           HTTPClientConfig           `yaml:"http_client"`
	CoingeckoMarkets     CoingeckoMarketsConfig     `yaml:"coingecko_markets"`
	CoingeckoCoins       CoingeckoCoinsConfig       `yaml:"coingecko_coins"`
	CoingeckoMarketChart CoingeckoMarketChartConfig `yaml:"coingecko_market_chart"`
	APIKeys              APIKeyConfig               `yaml:"api_keys"`
	TokensFile           string                     `yaml:"tokens_file"`
	APITokens            *APITokens                 `yaml:"-"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// HTTPClientConfig controls the upstream transport
type HTTPClientConfig struct {
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		Log:    LogConfig{Level: "info"},
		Cache:  cache.DefaultCacheConfig(),
		HTTPClient: HTTPClientConfig{
			ConnectionTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
		},
		CoingeckoCoins:       DefaultCoinsConfig(),
		CoingeckoMarketChart: DefaultMarketChartConfig(),
		APIKeys:              DefaultAPIKeyConfig(),
		APITokens:            &APITokens{Tokens: []string{}},
	}
}

// LoadConfig reads the YAML file at path on top of Default() and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrapf(err, "read config %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if cfg.TokensFile != "" {
		apiTokens, err := LoadAPITokens(cfg.TokensFile)
		if err != nil {
			return nil, errors.Wrapf(err, "load api tokens from %s", cfg.TokensFile)
		}
		cfg.APITokens = apiTokens
	}
	if cfg.APITokens == nil {
		cfg.APITokens = &APITokens{Tokens: []string{}}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.Errorf("server port %d out of range", c.Server.Port)
	}
	switch strings.ToLower(c.CoingeckoCoins.Mode) {
	case "", CoinsModeDirect, CoinsModeSelf:
	default:
		return errors.Errorf("unknown coingecko_coins mode %q", c.CoingeckoCoins.Mode)
	}
	if c.CoingeckoCoins.Revalidate < 0 {
		return errors.New("coingecko_coins revalidate must not be negative")
	}
	if c.CoingeckoMarkets.MaxPerPage < 0 {
		return errors.New("coingecko_markets max_per_page must not be negative")
	}
	return nil
}

// ApplyEnv overrides file values with the deployment environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMarketsURL); ok {
		c.CoingeckoMarkets.APIURL = v
	}
	if v, ok := lookup(EnvCoinsURL); ok && v != "" {
		c.CoingeckoCoins.APIURL = v
	}
	if v, ok := lookup(EnvChartURL); ok && v != "" {
		c.CoingeckoMarketChart.APIURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s %q", EnvPort, v)
		}
		c.Server.Port = port
	}
	return nil
}
