package coingecko_market_chart

import (
	"fmt"
	"net/url"

	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
)

const (
	MARKET_CHART_API_PATH_TEMPLATE = "/coins/%s/market_chart"

	DefaultCurrency = "usd"
	DefaultDays     = "7"
)

type MarketChartRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
	coinID string
}

func NewMarketChartRequestBuilder(baseURL, coinID string) *MarketChartRequestBuilder {
	apiPath := fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, url.PathEscape(coinID))

	rb := &MarketChartRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, apiPath),
		coinID:                  coinID,
	}

	rb.WithCurrency(DefaultCurrency)
	rb.WithDays(DefaultDays)

	return rb
}

func (rb *MarketChartRequestBuilder) WithDays(days string) *MarketChartRequestBuilder {
	if days != "" {
		rb.With("days", days)
	}
	return rb
}

func (rb *MarketChartRequestBuilder) WithCurrency(currency string) *MarketChartRequestBuilder {
	rb.CoingeckoRequestBuilder.WithCurrency(currency)
	return rb
}
