package api

import (
	"net/http"
)

// handleMarkets proxies the upstream market list. limit is forwarded verbatim.
func (s *Server) handleMarkets(w http.ResponseWriter, r *http.Request) {
	limit := r.URL.Query().Get("limit")

	body, err := s.marketsService.Markets(r.Context(), limit)
	if err != nil {
		s.sendError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", CacheControlShared)
	s.sendRawJSON(w, http.StatusOK, body)
}
