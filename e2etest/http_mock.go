package e2etest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
)

// RecordedRequest is one call received by the mock upstream
type RecordedRequest struct {
	Path    string
	Query   map[string]string
	Headers http.Header
}

// MockServer imitates the CoinGecko REST API under /api/v3
type MockServer struct {
	server *httptest.Server

	mu        sync.Mutex
	requests  []RecordedRequest
	overrides map[string]mockResponse

	MarketsData string
	Coins       map[string]string
	Charts      map[string]string
}

type mockResponse struct {
	status int
	body   string
}

// NewMockServer starts the mock upstream on a free port
func NewMockServer() *MockServer {
	ms := &MockServer{
		overrides:   make(map[string]mockResponse),
		MarketsData: defaultMarketsData,
		Coins:       map[string]string{"bitcoin": bitcoinDetailData},
		Charts:      map[string]string{"bitcoin": bitcoinChartData},
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v3").Subrouter()
	api.HandleFunc("/coins/markets", ms.handleMarkets)
	api.HandleFunc("/coins/{id}", ms.handleCoin)
	api.HandleFunc("/coins/{id}/market_chart", ms.handleMarketChart)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.record(r)
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	ms.server = httptest.NewServer(router)
	return ms
}

// GetURL returns the base URL of the mock API, including /api/v3
func (ms *MockServer) GetURL() string {
	return ms.server.URL + "/api/v3"
}

func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse makes path answer with status and body instead of the default data
func (ms *MockServer) SetResponse(path string, status int, body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.overrides[path] = mockResponse{status: status, body: body}
}

// Requests returns the calls received for path
func (ms *MockServer) Requests(path string) []RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	var out []RecordedRequest
	for _, req := range ms.requests {
		if req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

func (ms *MockServer) record(r *http.Request) {
	query := make(map[string]string)
	for key := range r.URL.Query() {
		query[key] = r.URL.Query().Get(key)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = append(ms.requests, RecordedRequest{
		Path:    r.URL.Path,
		Query:   query,
		Headers: r.Header.Clone(),
	})
}

// respond writes an override for the request path if one is set, else body
func (ms *MockServer) respond(w http.ResponseWriter, r *http.Request, body string, found bool) {
	ms.record(r)

	ms.mu.Lock()
	override, ok := ms.overrides[r.URL.Path]
	ms.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case ok:
		w.WriteHeader(override.status)
		_, _ = w.Write([]byte(override.body))
	case !found:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"coin not found"}`))
	default:
		_, _ = w.Write([]byte(body))
	}
}

func (ms *MockServer) handleMarkets(w http.ResponseWriter, r *http.Request) {
	ms.respond(w, r, ms.MarketsData, true)
}

func (ms *MockServer) handleCoin(w http.ResponseWriter, r *http.Request) {
	body, found := ms.Coins[mux.Vars(r)["id"]]
	ms.respond(w, r, body, found)
}

func (ms *MockServer) handleMarketChart(w http.ResponseWriter, r *http.Request) {
	body, found := ms.Charts[mux.Vars(r)["id"]]
	ms.respond(w, r, body, found)
}

const defaultMarketsData = `[
  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img.example/btc.png","current_price":63000.12,"market_cap":1240000000000,"price_change_percentage_24h":-0.81},
  {"id":"ethereum","symbol":"eth","name":"Ethereum","image":"https://img.example/eth.png","current_price":3050.5,"market_cap":366000000000,"price_change_percentage_24h":2.14},
  {"id":"wrapped-bitcoin","symbol":"wbtc","name":"Wrapped Bitcoin","image":"https://img.example/wbtc.png","current_price":62950,"market_cap":9800000000,"price_change_percentage_24h":-0.77}
]`

const bitcoinDetailData = `{
  "id": "bitcoin",
  "symbol": "btc",
  "name": "Bitcoin",
  "market_cap_rank": 1,
  "image": {"thumb": "t.png", "small": "s.png", "large": "https://img.example/btc-large.png"},
  "description": {"en": "Bitcoin is the first decentralized cryptocurrency. It launched in 2009."},
  "categories": ["Cryptocurrency"],
  "links": {"homepage": ["http://www.bitcoin.org"], "blockchain_site": ["https://mempool.space/"]},
  "last_updated": "2024-05-01T12:30:00.000Z",
  "market_data": {
    "current_price": {"usd": 63000.12},
    "market_cap": {"usd": 1240000000000},
    "high_24h": {"usd": 64000},
    "low_24h": {"usd": 61000.5},
    "price_change_24h": -512.33,
    "price_change_percentage_24h": -0.81,
    "circulating_supply": 19690000,
    "total_supply": 21000000,
    "ath": {"usd": 73738},
    "ath_date": {"usd": "2024-03-14T07:10:36.635Z"},
    "atl": {"usd": 67.81},
    "atl_date": {"usd": "2013-07-06T00:00:00.000Z"}
  }
}`

const bitcoinChartData = `{
  "prices": [[1714000000000, 62000.5], [1714086400000, 63500], [1714172800000, 63000.12]],
  "market_caps": [],
  "total_volumes": []
}`
