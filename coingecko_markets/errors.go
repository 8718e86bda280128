package coingecko_markets

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingURL is returned when no markets endpoint is configured.
var ErrMissingURL = errors.New("Missing COINGECKO_API_URL in env")

// LimitError rejects a limit outside 1..Max when max_per_page is configured.
type LimitError struct {
	Limit string
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit must be an integer between 1 and %d, got %q", e.Max, e.Limit)
}
