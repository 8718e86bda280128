package coingecko_common

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError is returned when upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}

// AsStatusError unwraps err into a *StatusError if it carries one.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsKeyRejection reports statuses that put an API key into backoff.
func IsKeyRejection(statusCode int) bool {
	return statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden ||
		statusCode == http.StatusTooManyRequests
}
