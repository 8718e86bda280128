package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/cache"
	"github.com/cryptochainz/market-dashboard/coingecko_coins"
	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
)

type mockMarkets struct {
	mock.Mock
}

func (m *mockMarkets) Markets(ctx context.Context, limit string) (json.RawMessage, error) {
	args := m.Called(ctx, limit)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *mockMarkets) Healthy() bool {
	return m.Called().Bool(0)
}

type mockCoins struct {
	mock.Mock
}

func (m *mockCoins) Raw(ctx context.Context, id string) ([]byte, cache.Status, error) {
	args := m.Called(ctx, id)
	body, _ := args.Get(0).([]byte)
	return body, args.Get(1).(cache.Status), args.Error(2)
}

func (m *mockCoins) Coin(ctx context.Context, id string, r *http.Request) (*coingecko_coins.CoinDetail, error) {
	args := m.Called(ctx, id, r)
	detail, _ := args.Get(0).(*coingecko_coins.CoinDetail)
	return detail, args.Error(1)
}

func (m *mockCoins) Healthy() bool {
	return m.Called().Bool(0)
}

type mockChart struct {
	mock.Mock
}

func (m *mockChart) Fetch(ctx context.Context, id string) ([]coingecko_market_chart.ChartPoint, error) {
	args := m.Called(ctx, id)
	points, _ := args.Get(0).([]coingecko_market_chart.ChartPoint)
	return points, args.Error(1)
}

func (m *mockChart) Healthy() bool {
	return m.Called().Bool(0)
}

type testServer struct {
	*Server
	markets *mockMarkets
	coins   *mockCoins
	chart   *mockChart
}

func newTestServer() *testServer {
	markets, coins, chart := &mockMarkets{}, &mockCoins{}, &mockChart{}
	return &testServer{
		Server:  New("0", zap.NewNop(), markets, coins, chart),
		markets: markets,
		coins:   coins,
		chart:   chart,
	}
}
