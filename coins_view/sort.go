package coins_view

import "github.com/shopspring/decimal"

// SortKey selects the list ordering
type SortKey string

const (
	SortMarketCapDesc SortKey = "market_cap_desc"
	SortMarketCapAsc  SortKey = "market_cap_asc"
	SortPriceDesc     SortKey = "price_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortChangeDesc    SortKey = "change_desc"
	SortChangeAsc     SortKey = "change_asc"

	// SortNone keeps the upstream order
	SortNone SortKey = "none"
)

// SortKeys lists the selectable orderings in display order
var SortKeys = []SortKey{
	SortMarketCapDesc,
	SortMarketCapAsc,
	SortPriceDesc,
	SortPriceAsc,
	SortChangeDesc,
	SortChangeAsc,
}

var sortLabels = map[SortKey]string{
	SortMarketCapDesc: "Market cap ↓",
	SortMarketCapAsc:  "Market cap ↑",
	SortPriceDesc:     "Price ↓",
	SortPriceAsc:      "Price ↑",
	SortChangeDesc:    "24h change ↓",
	SortChangeAsc:     "24h change ↑",
	SortNone:          "Unsorted",
}

func (k SortKey) Label() string {
	if label, ok := sortLabels[k]; ok {
		return label
	}
	return string(k)
}

// ParseSortKey maps a query value to a SortKey; unknown values are SortNone.
func ParseSortKey(raw string) SortKey {
	for _, key := range SortKeys {
		if string(key) == raw {
			return key
		}
	}
	return SortNone
}

type comparator func(a, b CoinSummary) int

func comparatorFor(key SortKey) comparator {
	switch key {
	case SortMarketCapDesc:
		return descending(func(c CoinSummary) decimal.Decimal { return c.MarketCap })
	case SortMarketCapAsc:
		return ascending(func(c CoinSummary) decimal.Decimal { return c.MarketCap })
	case SortPriceDesc:
		return descending(func(c CoinSummary) decimal.Decimal { return c.CurrentPrice })
	case SortPriceAsc:
		return ascending(func(c CoinSummary) decimal.Decimal { return c.CurrentPrice })
	case SortChangeDesc:
		return descending(func(c CoinSummary) decimal.Decimal { return c.PriceChangePercentage24h })
	case SortChangeAsc:
		return ascending(func(c CoinSummary) decimal.Decimal { return c.PriceChangePercentage24h })
	}
	return nil
}

func ascending(field func(CoinSummary) decimal.Decimal) comparator {
	return func(a, b CoinSummary) int {
		return field(a).Cmp(field(b))
	}
}

func descending(field func(CoinSummary) decimal.Decimal) comparator {
	return func(a, b CoinSummary) int {
		return field(b).Cmp(field(a))
	}
}
