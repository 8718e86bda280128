package coingecko_coins

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/cache"
	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	"github.com/cryptochainz/market-dashboard/config"
	"github.com/cryptochainz/market-dashboard/metrics"
)

// Service fetches single coin records. Successful records are kept for the
// revalidation window; errors are never cached.
//
// Self-mode reads go through selfClient, which carries no API keys and no
// upstream rate limiter: the self base may be taken from request headers.
type Service struct {
	config     *config.Config
	client     cg.IClient
	selfClient cg.IClient
	cache      cache.Cache
	metrics *metrics.MetricsWriter
	logger  *zap.Logger
	healthy atomic.Bool
}

// NewService creates the coins service. A nil selfClient gets a plain
// keyless client.
func NewService(cfg *config.Config, client, selfClient cg.IClient, cacheService cache.Cache, logger *zap.Logger) *Service {
	if selfClient == nil {
		selfClient = NewSelfClient(cg.DefaultClientOptions(), nil, logger)
	}
	return &Service{
		config:     cfg,
		client:     client,
		selfClient: selfClient,
		cache:      cacheService,
		metrics:    metrics.NewMetricsWriter(metrics.ServiceCoins),
		logger:     logger.Named("coins"),
	}
}

// NewSelfClient builds the client used for self-mode reads: no API key
// manager and no rate limiter.
func NewSelfClient(opts cg.ClientOptions, handler cg.IHttpStatusHandler, logger *zap.Logger) cg.IClient {
	return cg.NewClient(cg.NewHTTPClient(opts, handler, nil, logger), nil, logger)
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return errors.New("cache dependency not provided")
	}
	coinsCfg := s.config.CoingeckoCoins
	s.logger.Info("coins service started",
		zap.String("mode", coinsCfg.Mode),
		zap.String("base_url", coinsCfg.BaseURL()),
		zap.Duration("revalidate", coinsCfg.Revalidate))
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

func (s *Service) Healthy() bool {
	return s.healthy.Load()
}

// Raw returns the record for id from the configured upstream base.
func (s *Service) Raw(ctx context.Context, id string) ([]byte, cache.Status, error) {
	return s.load(ctx, s.client, s.config.CoingeckoCoins.BaseURL(), "/coins/"+url.PathEscape(id), id)
}

// Coin returns the parsed record for id. In self mode the record is read
// through this service's own /api/coins/{id}, located from r.
func (s *Service) Coin(ctx context.Context, id string, r *http.Request) (*CoinDetail, error) {
	client, base, path, err := s.source(id, r)
	if err != nil {
		return nil, err
	}

	data, _, err := s.load(ctx, client, base, path, id)
	if err != nil {
		return nil, err
	}

	var detail CoinDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, errors.Wrapf(err, "decode coin %s", id)
	}
	return &detail, nil
}

func (s *Service) source(id string, r *http.Request) (cg.IClient, string, string, error) {
	coinsCfg := s.config.CoingeckoCoins
	escaped := url.PathEscape(id)

	if !coinsCfg.IsSelfMode() {
		return s.client, coinsCfg.BaseURL(), "/coins/" + escaped, nil
	}

	base := coinsCfg.SelfBaseURL
	if base == "" {
		var err error
		if base, err = ResolveBaseURL(r); err != nil {
			return nil, "", "", err
		}
	}
	return s.selfClient, base, "/api/coins/" + escaped, nil
}

func (s *Service) load(ctx context.Context, client cg.IClient, base, path, id string) ([]byte, cache.Status, error) {
	key := "coin:" + base + path
	ttl := s.config.CoingeckoCoins.Revalidate

	data, status, err := s.cache.GetOrLoad(ctx, key, ttl, func(loadCtx context.Context) ([]byte, error) {
		return s.fetch(loadCtx, client, base, path, id)
	})
	s.metrics.RecordCacheLookup(string(status))
	if sized, ok := s.cache.(interface{ Stats() cache.ServiceStats }); ok {
		s.metrics.RecordCacheSize(sized.Stats().GoCacheItems)
	}
	if err != nil {
		return nil, status, err
	}
	return data, status, nil
}

func (s *Service) fetch(ctx context.Context, client cg.IClient, base, path, id string) ([]byte, error) {
	resp, err := client.Get(ctx, base, path, nil)
	if err != nil {
		if statusErr, ok := cg.AsStatusError(err); ok {
			s.logger.Info("coin fetch rejected", zap.String("id", id), zap.Int("status", statusErr.StatusCode))
			if statusErr.StatusCode >= http.StatusInternalServerError {
				s.healthy.Store(false)
			}
			return nil, &CoinFetchError{ID: id, StatusCode: statusErr.StatusCode}
		}
		s.healthy.Store(false)
		return nil, errors.Wrapf(err, "fetch coin %s", id)
	}

	var decoded CoinDetail
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, errors.Wrapf(err, "decode coin %s", id)
	}

	s.healthy.Store(true)
	return resp.Body, nil
}
