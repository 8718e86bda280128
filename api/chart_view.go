package api

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
	"github.com/cryptochainz/market-dashboard/coins_view"
)

const (
	chartWidth  = 600
	chartHeight = 200
)

// chartView is the inline SVG form of a chart state
type chartView struct {
	Width    int
	Height   int
	Polyline string
	Low      string
	High     string
	Error    string
	Pending  bool
}

func newChartView(state coingecko_market_chart.State) chartView {
	view := chartView{Width: chartWidth, Height: chartHeight}
	// Unfinished load: the page request ended first. Not a data error.
	if state.Loading {
		view.Pending = true
		return view
	}
	if state.Err != nil {
		view.Error = state.Err.Error()
		return view
	}
	if len(state.Points) == 0 {
		view.Error = coingecko_market_chart.ErrNoPriceData.Error()
		return view
	}

	points := state.Points
	minX, maxX := points[0].X, points[len(points)-1].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	spanX := float64(maxX - minX)
	spanY := maxY - minY

	coords := make([]string, len(points))
	for i, p := range points {
		x := 0.0
		if spanX > 0 {
			x = float64(p.X-minX) / spanX * chartWidth
		}
		y := chartHeight / 2.0
		if spanY > 0 {
			y = chartHeight - (p.Y-minY)/spanY*chartHeight
		}
		coords[i] = formatCoord(x) + "," + formatCoord(y)
	}

	view.Polyline = strings.Join(coords, " ")
	view.Low = coins_view.FormatUSD(decimal.NewFromFloat(minY))
	view.High = coins_view.FormatUSD(decimal.NewFromFloat(maxY))
	return view
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
