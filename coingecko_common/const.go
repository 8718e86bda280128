package coingecko_common

const (
	UserAgent = "Mozilla/5.0 Market-Dashboard"

	// Authentication headers accepted by the CoinGecko API
	ProAPIKeyHeader  = "x-cg-pro-api-key"
	DemoAPIKeyHeader = "x-cg-demo-api-key"
)

// Request outcomes reported to IHttpStatusHandler
const (
	StatusSuccess     = "success"
	StatusFailed      = "error"
	StatusHTTPError   = "http_error"
	StatusRateLimited = "rate_limited"
)
