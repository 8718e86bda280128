package coingecko_markets

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	"github.com/cryptochainz/market-dashboard/config"
)

// Service proxies the upstream market list. Every call makes exactly one upstream request.
type Service struct {
	config  *config.Config
	client  cg.IClient
	logger  *zap.Logger
	healthy atomic.Bool
}

func NewService(cfg *config.Config, client cg.IClient, logger *zap.Logger) *Service {
	return &Service{
		config: cfg,
		client: client,
		logger: logger.Named("markets"),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.config.CoingeckoMarkets.APIURL == "" {
		s.logger.Warn("markets endpoint is not configured", zap.String("env", config.EnvMarketsURL))
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy reports whether the last upstream call succeeded
func (s *Service) Healthy() bool {
	return s.healthy.Load()
}

// Markets returns the upstream JSON list for limit. An empty limit means DefaultLimit;
// any other value is forwarded verbatim as per_page.
func (s *Service) Markets(ctx context.Context, limit string) (json.RawMessage, error) {
	endpoint := s.config.CoingeckoMarkets.APIURL
	if endpoint == "" {
		return nil, ErrMissingURL
	}

	if limit == "" {
		limit = DefaultLimit
	}
	if err := s.checkLimit(limit); err != nil {
		return nil, err
	}

	rb := NewMarketRequestBuilder(endpoint).WithPerPage(limit)
	resp, err := s.client.Execute(ctx, rb.CoingeckoRequestBuilder)
	if err != nil {
		s.healthy.Store(false)
		return nil, errors.Wrap(err, "fetch markets")
	}

	var body json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		s.healthy.Store(false)
		return nil, errors.Wrap(err, "decode markets")
	}

	s.healthy.Store(true)
	s.logger.Debug("markets fetched",
		zap.String("per_page", limit),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", resp.Duration))
	return body, nil
}

func (s *Service) checkLimit(limit string) error {
	max := s.config.CoingeckoMarkets.MaxPerPage
	if max <= 0 {
		return nil
	}
	n, err := strconv.Atoi(limit)
	if err != nil || n < 1 || n > max {
		return &LimitError{Limit: limit, Max: max}
	}
	return nil
}
