package coingecko_coins

import (
	"fmt"
	"net/http"
)

// CoinFetchError reports a non-2xx answer for a coin record.
type CoinFetchError struct {
	ID         string
	StatusCode int
}

func (e *CoinFetchError) Error() string {
	return fmt.Sprintf("failed to fetch coin %q: status %d", e.ID, e.StatusCode)
}

// NotFound reports whether the upstream has no such coin.
func (e *CoinFetchError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
