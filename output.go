package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cryptochainz/market-dashboard/coingecko_coins"
	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
	"github.com/cryptochainz/market-dashboard/coins_view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))

	changeStyles = map[string]lipgloss.Style{
		coins_view.ChangeUp:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#73F59F"}),
		coins_view.ChangeDown: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		coins_view.ChangeFlat: mutedStyle,
	}

	symbolCol = lipgloss.NewStyle().Width(8)
	nameCol   = lipgloss.NewStyle().Width(24)
	priceCol  = lipgloss.NewStyle().Width(18).Align(lipgloss.Right)
	changeCol = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	capCol    = lipgloss.NewStyle().Width(22).Align(lipgloss.Right)
)

func renderChange(d decimal.Decimal) string {
	return changeStyles[coins_view.ChangeClass(d)].Render(coins_view.FormatPercent(d))
}

func renderMarkets(w io.Writer, coins []coins_view.CoinSummary) {
	if len(coins) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(coins_view.NoMatchesMessage))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		symbolCol.Render("SYMBOL"),
		nameCol.Render("NAME"),
		priceCol.Render("PRICE"),
		changeCol.Render("24H"),
		capCol.Render("MARKET CAP"),
	)))

	for _, c := range coins {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			symbolCol.Render(coins_view.DisplaySymbol(c.Symbol)),
			nameCol.Render(c.Name),
			priceCol.Render(coins_view.FormatUSD(c.CurrentPrice)),
			changeCol.Render(renderChange(c.PriceChangePercentage24h)),
			capCol.Render("$"+coins_view.FormatAmount(c.MarketCap)),
		))
	}
}

func renderCoin(w io.Writer, detail *coingecko_coins.CoinDetail, points []coingecko_market_chart.ChartPoint, chartErr error) {
	md := detail.MarketData

	title := fmt.Sprintf("%s (%s)", detail.Name, coins_view.DisplaySymbol(detail.Symbol))
	if detail.MarketCapRank > 0 {
		title += fmt.Sprintf("  #%d", detail.MarketCapRank)
	}
	fmt.Fprintln(w, headerStyle.Render(title))

	if summary := detail.Summary(); summary != "" {
		fmt.Fprintln(w, mutedStyle.Render(summary))
	}

	price := "n/a"
	if v, ok := md.CurrentPrice.In(coingecko_coins.Currency); ok {
		price = coins_view.FormatUSD(v)
	}
	fmt.Fprintf(w, "Price       %s %s\n", price, renderChange(md.PriceChangePercentage24h))

	if v, ok := md.MarketCap.In(coingecko_coins.Currency); ok {
		fmt.Fprintf(w, "Market cap  $%s\n", coins_view.FormatAmount(v))
	}
	fmt.Fprintf(w, "Supply      %s", coins_view.FormatAmount(md.CirculatingSupply))
	if md.TotalSupply.Valid {
		fmt.Fprintf(w, " / %s", coins_view.FormatAmount(md.TotalSupply.Decimal))
	}
	fmt.Fprintln(w)

	if chartErr != nil {
		fmt.Fprintln(w, errorStyle.Render("Chart: "+chartErr.Error()))
	} else if len(points) > 0 {
		low, high := points[0].Y, points[0].Y
		for _, p := range points {
			low = min(low, p.Y)
			high = max(high, p.Y)
		}
		first := decimal.NewFromFloat(points[0].Y)
		last := decimal.NewFromFloat(points[len(points)-1].Y)
		change := decimal.Zero
		if !first.IsZero() {
			change = last.Sub(first).Div(first).Mul(decimal.NewFromInt(100))
		}
		fmt.Fprintf(w, "7d range    %s – %s %s\n",
			coins_view.FormatUSD(decimal.NewFromFloat(low)),
			coins_view.FormatUSD(decimal.NewFromFloat(high)),
			renderChange(change))
	}

	if len(detail.Categories) > 0 {
		fmt.Fprintln(w, mutedStyle.Render(strings.Join(detail.Categories, " · ")))
	}
	if home := detail.Homepage(); home != "" {
		fmt.Fprintln(w, home)
	}
}
