package coingecko_market_chart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PricePoint is one [timestamp, price] sample; Timestamp is epoch milliseconds
type PricePoint struct {
	Timestamp int64
	Price     decimal.Decimal
}

// ChartPoint is the plotting form of a PricePoint
type ChartPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// MarketChartResponse is the part of the upstream response the chart uses
type MarketChartResponse struct {
	Prices []json.RawMessage `json:"prices"`
}

// ParsePrices converts raw [ts, price] pairs. Any malformed pair, or no pairs, yields ErrNoPriceData.
func ParsePrices(raw []json.RawMessage) ([]PricePoint, error) {
	if len(raw) == 0 {
		return nil, ErrNoPriceData
	}

	points := make([]PricePoint, 0, len(raw))
	for _, item := range raw {
		var pair []decimal.Decimal
		if err := json.Unmarshal(item, &pair); err != nil || len(pair) != 2 {
			return nil, ErrNoPriceData
		}
		points = append(points, PricePoint{
			Timestamp: pair[0].IntPart(),
			Price:     pair[1],
		})
	}
	return points, nil
}

// ToChartPoints maps price samples to plotting coordinates
func ToChartPoints(prices []PricePoint) []ChartPoint {
	points := make([]ChartPoint, len(prices))
	for i, p := range prices {
		points[i] = ChartPoint{X: p.Timestamp, Y: p.Price.InexactFloat64()}
	}
	return points
}
