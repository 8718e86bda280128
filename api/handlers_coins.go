package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
)

type chartResponse struct {
	Points []coingecko_market_chart.ChartPoint `json:"points"`
}

// handleCoin proxies /coins/{id} from the configured upstream
func (s *Server) handleCoin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	body, cacheStatus, err := s.coinsService.Raw(r.Context(), id)
	if err != nil {
		s.sendError(w, r, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	w.Header().Set("Cache-Control", CacheControlShared)
	s.sendRawJSON(w, http.StatusOK, body)
}

// handleMarketChart serves the coin's chart points
func (s *Server) handleMarketChart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	points, err := s.marketChartService.Fetch(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, coingecko_market_chart.ErrNoPriceData) {
			status = http.StatusNotFound
		}
		s.sendJSONStatus(w, status, errorBody{Error: err.Error()})
		return
	}

	w.Header().Set("Cache-Control", CacheControlShared)
	s.sendJSONResponse(w, chartResponse{Points: points})
}
