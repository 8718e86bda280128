package coingecko_coins

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoHost is returned when a self-mode base URL cannot be derived from the request.
var ErrNoHost = errors.New("cannot resolve own host from request")

// ResolveBaseURL derives this service's public origin from an incoming request.
// Host comes from X-Forwarded-Host, else Host; the scheme from X-Forwarded-Proto, else http.
func ResolveBaseURL(r *http.Request) (string, error) {
	if r == nil {
		return "", ErrNoHost
	}

	host := firstHeaderValue(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}
	if host == "" {
		return "", ErrNoHost
	}

	proto := firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))
	if proto == "" {
		proto = "http"
	}
	return proto + "://" + host, nil
}

// Proxies may append to forwarded headers; the first entry is the client-facing one.
func firstHeaderValue(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}
