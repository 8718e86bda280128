package coingecko_common

// IHttpStatusHandler receives the outcome of every upstream request
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	OnRequest(status string)
	// OnRateLimited handles a 429 from upstream
	OnRateLimited()
}
