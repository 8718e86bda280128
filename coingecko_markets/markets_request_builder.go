package coingecko_markets

import (
	"strconv"

	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
)

const (
	DefaultCurrency = "usd"
	DefaultOrder    = "market_cap_desc"
	DefaultLimit    = "10"
)

// MarketsRequestBuilder builds requests for the /coins/markets endpoint.
// The configured URL already points at the endpoint, so no path is appended.
type MarketsRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewMarketRequestBuilder creates a builder preset with the dashboard's fixed query
func NewMarketRequestBuilder(endpointURL string) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(endpointURL, ""),
	}

	rb.WithCurrency(DefaultCurrency)
	rb.WithOrder(DefaultOrder)
	rb.WithPage(1)
	rb.WithSparkline(false)

	return rb
}

func (rb *MarketsRequestBuilder) WithPage(page int) *MarketsRequestBuilder {
	rb.With("page", strconv.Itoa(page))
	return rb
}

// WithPerPage sets per_page exactly as given
func (rb *MarketsRequestBuilder) WithPerPage(perPage string) *MarketsRequestBuilder {
	rb.With("per_page", perPage)
	return rb
}

func (rb *MarketsRequestBuilder) WithOrder(order string) *MarketsRequestBuilder {
	if order != "" {
		rb.With("order", order)
	}
	return rb
}

func (rb *MarketsRequestBuilder) WithSparkline(enabled bool) *MarketsRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}
