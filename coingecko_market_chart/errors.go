package coingecko_market_chart

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoPriceData is returned when the upstream answers without usable prices.
var ErrNoPriceData = errors.New("No price data returned.")

const snippetLimit = 120

// HTTPError describes a non-2xx chart response with the start of its body.
type HTTPError struct {
	StatusCode int
	Snippet    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s…", e.StatusCode, e.Snippet)
}

func newHTTPError(statusCode int, body []byte) *HTTPError {
	if len(body) > snippetLimit {
		body = body[:snippetLimit]
	}
	return &HTTPError{StatusCode: statusCode, Snippet: string(body)}
}
