package e2etest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptochainz/market-dashboard/api"
)

const marketsPath = "/api/v3/coins/markets"

func TestMarketsEndpoint_DefaultLimit(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{})

	resp, body := env.get(t, "/api/markets")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.CacheControlShared, resp.Header.Get("Cache-Control"))
	assert.JSONEq(t, defaultMarketsData, body)

	requests := env.MockServer.Requests(marketsPath)
	require.Len(t, requests, 1)
	assert.Equal(t, map[string]string{
		"vs_currency": "usd",
		"order":       "market_cap_desc",
		"per_page":    "10",
		"page":        "1",
		"sparkline":   "false",
	}, requests[0].Query)
}

func TestMarketsEndpoint_LimitPassthrough(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{})

	for _, limit := range []string{"25", "1000", "abc"} {
		resp, _ := env.get(t, "/api/markets?limit="+limit)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	requests := env.MockServer.Requests(marketsPath)
	require.Len(t, requests, 3)
	assert.Equal(t, "25", requests[0].Query["per_page"])
	assert.Equal(t, "1000", requests[1].Query["per_page"])
	assert.Equal(t, "abc", requests[2].Query["per_page"])
}

func TestMarketsEndpoint_MaxPerPage(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{MaxPerPage: 250})

	resp, body := env.get(t, "/api/markets?limit=500")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "between 1 and 250")
	assert.Empty(t, env.MockServer.Requests(marketsPath))
}

func TestMarketsEndpoint_UpstreamError(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{})
	env.MockServer.SetResponse(marketsPath, http.StatusServiceUnavailable, `{"status":"down"}`)

	resp, body := env.get(t, "/api/markets")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Upstream error 503"}`, body)
	assert.Len(t, env.MockServer.Requests(marketsPath), 1, "no retries")
}

func TestMarketsEndpoint_InvalidJSON(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{})
	env.MockServer.SetResponse(marketsPath, http.StatusOK, `[{"id":`)

	resp, body := env.get(t, "/api/markets")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Contains(t, payload["error"], "Request failed: ")
}

func TestMarketsEndpoint_MissingURL(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{})
	env.Config.CoingeckoMarkets.APIURL = ""

	resp, body := env.get(t, "/api/markets")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing COINGECKO_API_URL in env"}`, body)
	assert.Empty(t, env.MockServer.Requests(marketsPath))
}

func TestMarketsEndpoint_DemoKeyHeader(t *testing.T) {
	env := SetupTest(t, TestConfigOptions{DemoTokens: []string{"demo-key-1"}})

	resp, _ := env.get(t, "/api/markets")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	requests := env.MockServer.Requests(marketsPath)
	require.Len(t, requests, 1)
	assert.Equal(t, "demo-key-1", requests[0].Headers.Get("x-cg-demo-api-key"))
	assert.NotContains(t, requests[0].Query, "x_cg_demo_api_key")
}
