package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/cache"
	"github.com/cryptochainz/market-dashboard/coingecko_coins"
	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	"github.com/cryptochainz/market-dashboard/coingecko_markets"
)

// CacheControlShared lets shared caches keep proxied responses for a minute
// and serve them stale while revalidating.
const CacheControlShared = "s-maxage=60, stale-while-revalidate=300"

// errorBody is the envelope for every API error
type errorBody struct {
	Error string `json:"error"`
}

// setCacheStatusHeader sets the Cache-Status header based on cache status
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus cache.Status) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", string(cacheStatus))
	}
}

// sendJSONResponse marshals data and writes it with status 200
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.sendJSONStatus(w, http.StatusOK, data)
}

func (s *Server) sendJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
	s.sendRawJSON(w, status, responseBytes)
}

// sendRawJSON writes an already encoded body with Content-Type, Content-Length
// and ETag headers
func (s *Server) sendRawJSON(w http.ResponseWriter, status int, body []byte) {
	hash := md5.Sum(body)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		s.logger.Warn("error writing response", zap.Error(err))
	}
}

// sendError writes the {"error": ...} envelope for err
func (s *Server) sendError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := errorResponse(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", w.Header().Get(RequestIDHeader)),
			zap.Int("status", status),
			zap.Error(err))
	}
	s.sendJSONStatus(w, status, errorBody{Error: message})
}

// errorResponse maps a service error to a status code and client message.
// Upstream statuses are forwarded; anything unclassified is a 500.
func errorResponse(err error) (int, string) {
	if errors.Is(err, coingecko_markets.ErrMissingURL) {
		return http.StatusInternalServerError, err.Error()
	}

	var limitErr *coingecko_markets.LimitError
	if errors.As(err, &limitErr) {
		return http.StatusBadRequest, limitErr.Error()
	}

	var fetchErr *coingecko_coins.CoinFetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode, upstreamMessage(fetchErr.StatusCode)
	}

	if statusErr, ok := cg.AsStatusError(err); ok {
		return statusErr.StatusCode, upstreamMessage(statusErr.StatusCode)
	}

	return http.StatusInternalServerError, "Request failed: " + errors.Cause(err).Error()
}

func upstreamMessage(status int) string {
	return fmt.Sprintf("Upstream error %d", status)
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error("error shutting down server", zap.Error(err))
		}
	}
}
