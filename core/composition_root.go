package core

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/api"
	"github.com/cryptochainz/market-dashboard/cache"
	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	"github.com/cryptochainz/market-dashboard/coingecko_coins"
	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
	"github.com/cryptochainz/market-dashboard/coingecko_markets"
	"github.com/cryptochainz/market-dashboard/config"
	"github.com/cryptochainz/market-dashboard/metrics"
	"github.com/cryptochainz/market-dashboard/scheduler"
)

// Services holds the upstream-facing services shared by the HTTP server and the CLI
type Services struct {
	Cache       *cache.Service
	Markets     *coingecko_markets.Service
	Coins       *coingecko_coins.Service
	MarketChart *coingecko_market_chart.Service
}

// NewServices builds the upstream clients and services. Rate limiters and
// API key backoff are shared; each service gets its own metrics label.
func NewServices(cfg *config.Config, logger *zap.Logger) *Services {
	limiters := cg.NewRateLimiterManager(cfg.APIKeys)
	keys := cg.NewAPIKeyManager(cfg.APITokens, logger)

	clientOptions := func(prefix string) cg.ClientOptions {
		opts := cg.DefaultClientOptions()
		opts.LogPrefix = prefix
		if cfg.HTTPClient.ConnectionTimeout > 0 {
			opts.ConnectionTimeout = cfg.HTTPClient.ConnectionTimeout
		}
		if cfg.HTTPClient.RequestTimeout > 0 {
			opts.RequestTimeout = cfg.HTTPClient.RequestTimeout
		}
		return opts
	}
	newClient := func(service string) cg.IClient {
		httpClient := cg.NewHTTPClient(clientOptions(service), metrics.NewMetricsWriter(service), limiters, logger)
		return cg.NewClient(httpClient, keys, logger)
	}
	// Self-mode reads hit this dashboard, not CoinGecko: no keys, no upstream limiter.
	selfClient := coingecko_coins.NewSelfClient(clientOptions(metrics.ServiceCoins+"_self"),
		metrics.NewMetricsWriter(metrics.ServiceCoins), logger)

	cacheService := cache.NewService(cfg.Cache, logger)
	return &Services{
		Cache:       cacheService,
		Markets:     coingecko_markets.NewService(cfg, newClient(metrics.ServiceMarkets), logger),
		Coins:       coingecko_coins.NewService(cfg, newClient(metrics.ServiceCoins), selfClient, cacheService, logger),
		MarketChart: coingecko_market_chart.NewService(cfg, newClient(metrics.ServiceMarketChart), logger),
	}
}

// Setup creates and registers all services. The server is registered last so
// it starts after, and stops before, the services it depends on.
func Setup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Registry, *api.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	registry := NewRegistry(logger)

	services := NewServices(cfg, logger)
	registry.Register(services.Cache)
	registry.Register(services.Markets)
	registry.Register(services.Coins)
	registry.Register(services.MarketChart)

	if interval := cfg.Cache.StatsInterval; interval > 0 {
		registry.Register(newCacheStatsJob(services.Cache, interval, logger))
	}

	server := api.New(strconv.Itoa(cfg.Server.Port), logger, services.Markets, services.Coins, services.MarketChart)
	registry.Register(server)

	return registry, server, nil
}

// newCacheStatsJob keeps the cache size gauge current between lookups, so
// entries evicted by go-cache cleanup are reflected too.
func newCacheStatsJob(cacheService *cache.Service, interval time.Duration, logger *zap.Logger) *scheduler.Job {
	writer := metrics.NewMetricsWriter(metrics.ServiceCoins)
	return scheduler.NewJob("cache-stats", interval, func(ctx context.Context) error {
		stats := cacheService.Stats()
		writer.RecordCacheSize(stats.GoCacheItems)
		logger.Debug("cache stats", zap.Int("items", stats.GoCacheItems), zap.Bool("enabled", stats.Enabled))
		return nil
	}, logger)
}
