package config

import (
	"strings"
	"time"
)

// PublicAPIURL is the CoinGecko base used when no coins base is configured.
const PublicAPIURL = "https://api.coingecko.com/api/v3"

// Coin detail fetch modes.
const (
	CoinsModeDirect = "direct"
	CoinsModeSelf   = "self"
)

// CoingeckoMarketsConfig configures the market-list proxy.
type CoingeckoMarketsConfig struct {
	// APIURL is the full /coins/markets endpoint. Empty means unconfigured.
	APIURL string `yaml:"api_url"`
	// MaxPerPage rejects larger limits with 400. 0 disables the check.
	MaxPerPage int `yaml:"max_per_page"`
}

// CoingeckoCoinsConfig configures the coin detail fetcher.
type CoingeckoCoinsConfig struct {
	APIURL      string        `yaml:"api_url"`
	Mode        string        `yaml:"mode"`
	SelfBaseURL string        `yaml:"self_base_url"`
	Revalidate  time.Duration `yaml:"revalidate"`
}

func DefaultCoinsConfig() CoingeckoCoinsConfig {
	return CoingeckoCoinsConfig{
		Mode:       CoinsModeDirect,
		Revalidate: 60 * time.Second,
	}
}

// BaseURL returns the configured base without a trailing slash, or the public API.
func (c CoingeckoCoinsConfig) BaseURL() string {
	if c.APIURL == "" {
		return PublicAPIURL
	}
	return strings.TrimRight(c.APIURL, "/")
}

// IsSelfMode reports whether detail records are fetched through this service's own proxy.
func (c CoingeckoCoinsConfig) IsSelfMode() bool {
	return strings.EqualFold(c.Mode, CoinsModeSelf)
}

// CoingeckoMarketChartConfig configures the price chart client.
type CoingeckoMarketChartConfig struct {
	// APIURL defaults to the coins base when empty.
	APIURL   string `yaml:"api_url"`
	Currency string `yaml:"currency"`
	Days     string `yaml:"days"`
}

func DefaultMarketChartConfig() CoingeckoMarketChartConfig {
	return CoingeckoMarketChartConfig{
		Currency: "usd",
		Days:     "7",
	}
}

// ChartBaseURL returns the market chart base, falling back to the coins base.
func (c *Config) ChartBaseURL() string {
	if c.CoingeckoMarketChart.APIURL != "" {
		return strings.TrimRight(c.CoingeckoMarketChart.APIURL, "/")
	}
	return c.CoingeckoCoins.BaseURL()
}
