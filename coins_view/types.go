package coins_view

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CoinSummary is one row of the market list
type CoinSummary struct {
	ID                       string          `json:"id"`
	Symbol                   string          `json:"symbol"`
	Name                     string          `json:"name"`
	Image                    string          `json:"image"`
	CurrentPrice             decimal.Decimal `json:"current_price"`
	MarketCap                decimal.Decimal `json:"market_cap"`
	PriceChangePercentage24h decimal.Decimal `json:"price_change_percentage_24h"`
}

// DecodeCoins parses an upstream market list
func DecodeCoins(data []byte) ([]CoinSummary, error) {
	var coins []CoinSummary
	if err := json.Unmarshal(data, &coins); err != nil {
		return nil, errors.Wrap(err, "decode market list")
	}
	return coins, nil
}
