package coingecko_market_chart

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	"github.com/cryptochainz/market-dashboard/config"
)

// Service fetches price history for the coin detail chart
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
		logger: logger.Named("market_chart"),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("market chart service started",
		zap.String("base_url", s.config.ChartBaseURL()),
		zap.String("days", s.config.CoingeckoMarketChart.Days))
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

func (s *Service) Healthy() bool {
	return s.healthy.Load()
}

// FetchPrices returns the price series for id over the configured window.
func (s *Service) FetchPrices(ctx context.Context, id string) ([]PricePoint, error) {
	chartCfg := s.config.CoingeckoMarketChart
	rb := NewMarketChartRequestBuilder(s.config.ChartBaseURL(), id).
		WithCurrency(chartCfg.Currency).
		WithDays(chartCfg.Days)

	resp, err := s.client.Execute(ctx, rb.CoingeckoRequestBuilder)
	if err != nil {
		if statusErr, ok := cg.AsStatusError(err); ok {
			return nil, newHTTPError(statusErr.StatusCode, statusErr.Body)
		}
		if ctx.Err() == nil {
			s.healthy.Store(false)
		}
		return nil, errors.Wrapf(err, "fetch market chart %s", id)
	}

	var payload MarketChartResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errors.Wrapf(err, "decode market chart %s", id)
	}

	prices, err := ParsePrices(payload.Prices)
	if err != nil {
		return nil, err
	}

	s.healthy.Store(true)
	return prices, nil
}

// Fetch implements Fetcher
func (s *Service) Fetch(ctx context.Context, id string) ([]ChartPoint, error) {
	prices, err := s.FetchPrices(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToChartPoints(prices), nil
}
