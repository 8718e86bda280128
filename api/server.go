package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/cache"
	"github.com/cryptochainz/market-dashboard/coingecko_coins"
	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
)

// MarketsService is the market-list proxy behind /api/markets and the home page
type MarketsService interface {
	Markets(ctx context.Context, limit string) (json.RawMessage, error)
	Healthy() bool
}

// CoinsService is the coin-detail fetcher
type CoinsService interface {
	Raw(ctx context.Context, id string) ([]byte, cache.Status, error)
	Coin(ctx context.Context, id string, r *http.Request) (*coingecko_coins.CoinDetail, error)
	Healthy() bool
}

// ChartService loads chart points for the detail page
type ChartService interface {
	coingecko_market_chart.Fetcher
	Healthy() bool
}

type Server struct {
	port               string
	logger             *zap.Logger
	marketsService     MarketsService
	coinsService       CoinsService
	marketChartService ChartService
	router             *mux.Router
	server             *http.Server
}

func New(port string, logger *zap.Logger, marketsService MarketsService, coinsService CoinsService, marketChartService ChartService) *Server {
	s := &Server{
		port:               port,
		logger:             logger.Named("api"),
		marketsService:     marketsService,
		coinsService:       coinsService,
		marketChartService: marketChartService,
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) newRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.instrument)

	router.HandleFunc("/api/markets", s.handleMarkets).Methods(http.MethodGet)
	router.HandleFunc("/api/coins/{id}", s.handleCoin).Methods(http.MethodGet)
	router.HandleFunc("/api/coins/{id}/market_chart", s.handleMarketChart).Methods(http.MethodGet)

	router.HandleFunc("/", s.handleHomePage).Methods(http.MethodGet)
	router.HandleFunc("/coin-details/{id}", s.handleCoinDetailsPage).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.NotFoundHandler = s.instrument(http.HandlerFunc(s.handleNotFoundPage))
	return router
}

// Handler exposes the routed handler, mainly for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start implements core.Interface. The listener is bound before returning so
// a busy port is reported to the caller.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return errors.Wrapf(err, "listen on port %s", s.port)
	}

	s.server = &http.Server{
		Handler: s.router,
	}

	s.logger.Info("server starting",
		zap.String("url", "http://localhost:"+s.port),
		zap.String("metrics", "/metrics"))

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", zap.Error(err))
		}
	}()

	return nil
}
