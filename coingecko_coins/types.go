package coingecko_coins

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency the dashboard reads from per-currency maps
const Currency = "usd"

// CurrencyValues maps a quote currency to an amount
type CurrencyValues map[string]decimal.Decimal

// In returns the value for currency and whether it is present.
func (v CurrencyValues) In(currency string) (decimal.Decimal, bool) {
	d, ok := v[currency]
	return d, ok
}

// CoinDetail is the subset of /coins/{id} the dashboard renders
type CoinDetail struct {
	ID            string            `json:"id"`
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name"`
	MarketCapRank int               `json:"market_cap_rank"`
	Image         CoinImage         `json:"image"`
	Description   map[string]string `json:"description"`
	MarketData    MarketData        `json:"market_data"`
	Links         CoinLinks         `json:"links"`
	Categories    []string          `json:"categories"`
	LastUpdated   string            `json:"last_updated"`
}

type CoinImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

type MarketData struct {
	CurrentPrice             CurrencyValues      `json:"current_price"`
	MarketCap                CurrencyValues      `json:"market_cap"`
	High24h                  CurrencyValues      `json:"high_24h"`
	Low24h                   CurrencyValues      `json:"low_24h"`
	PriceChange24h           decimal.Decimal     `json:"price_change_24h"`
	PriceChangePercentage24h decimal.Decimal     `json:"price_change_percentage_24h"`
	CirculatingSupply        decimal.Decimal     `json:"circulating_supply"`
	TotalSupply              decimal.NullDecimal `json:"total_supply"`
	ATH                      CurrencyValues      `json:"ath"`
	ATHDate                  map[string]string   `json:"ath_date"`
	ATL                      CurrencyValues      `json:"atl"`
	ATLDate                  map[string]string   `json:"atl_date"`
}

type CoinLinks struct {
	Homepage       []string `json:"homepage"`
	BlockchainSite []string `json:"blockchain_site"`
}

// Summary returns the first sentence of the English description.
func (c *CoinDetail) Summary() string {
	text := strings.TrimSpace(c.Description["en"])
	if text == "" {
		return ""
	}
	first, _, found := strings.Cut(text, ". ")
	if !found {
		return text
	}
	return first + "."
}

// Homepage returns the first non-empty homepage link.
func (c *CoinDetail) Homepage() string {
	return firstNonEmpty(c.Links.Homepage)
}

// Explorer returns the first non-empty blockchain explorer link.
func (c *CoinDetail) Explorer() string {
	return firstNonEmpty(c.Links.BlockchainSite)
}

// UpdatedAt parses LastUpdated; the zero time means unknown.
func (c *CoinDetail) UpdatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, c.LastUpdated)
	if err != nil {
		return time.Time{}
	}
	return t
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
