package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running.
// A service reports "up" once its last upstream call succeeded.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"coingecko_markets":      "unknown",
		"coingecko_coins":        "unknown",
		"coingecko_market_chart": "unknown",
	}

	if s.marketsService.Healthy() {
		services["coingecko_markets"] = "up"
	}
	if s.coinsService.Healthy() {
		services["coingecko_coins"] = "up"
	}
	if s.marketChartService.Healthy() {
		services["coingecko_market_chart"] = "up"
	}

	s.sendJSONResponse(w, map[string]interface{}{
		"status":   "ok",
		"services": services,
	})
}
