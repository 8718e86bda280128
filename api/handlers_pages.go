package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/cryptochainz/market-dashboard/coingecko_coins"
	"github.com/cryptochainz/market-dashboard/coingecko_market_chart"
	"github.com/cryptochainz/market-dashboard/coins_view"
)

type coinCard struct {
	ID          string
	Symbol      string
	Name        string
	Image       string
	Price       string
	MarketCap   string
	Change      string
	ChangeClass string
}

type sortOption struct {
	Key      coins_view.SortKey
	Label    string
	Selected bool
}

type limitOption struct {
	Value    int
	Selected bool
}

type homePage struct {
	Filter       string
	Limits       []limitOption
	Sorts        []sortOption
	Coins        []coinCard
	Error        string
	EmptyMessage string
}

type detailField struct {
	Label string
	Value string
}

type detailPage struct {
	ID          string
	Name        string
	Symbol      string
	Rank        int
	Image       string
	Summary     string
	Price       string
	Change      string
	ChangeClass string
	Fields      []detailField
	Homepage    string
	Explorer    string
	Categories  []string
	Updated     string
	Chart       chartView
	Error       string
}

type notFoundPage struct {
	Path string
}

func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	state := coins_view.StateFromQuery(r.URL.Query())
	page := newHomePage(state)

	body, err := s.marketsService.Markets(r.Context(), strconv.Itoa(state.Limit()))
	if err != nil {
		status, message := errorResponse(err)
		if status < http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		page.Error = message
		s.renderPage(w, status, "home.html", page)
		return
	}

	coins, err := coins_view.DecodeCoins(body)
	if err != nil {
		page.Error = "Request failed: " + errors.Cause(err).Error()
		s.renderPage(w, http.StatusBadGateway, "home.html", page)
		return
	}

	for _, c := range coins_view.Transform(coins, state) {
		page.Coins = append(page.Coins, newCoinCard(c))
	}
	if len(page.Coins) == 0 {
		page.EmptyMessage = coins_view.NoMatchesMessage
	}
	s.renderPage(w, http.StatusOK, "home.html", page)
}

func newHomePage(state coins_view.ListViewState) homePage {
	page := homePage{Filter: state.Filter()}
	for _, limit := range coins_view.AllowedLimits {
		page.Limits = append(page.Limits, limitOption{Value: limit, Selected: limit == state.Limit()})
	}
	for _, key := range coins_view.SortKeys {
		page.Sorts = append(page.Sorts, sortOption{Key: key, Label: key.Label(), Selected: key == state.SortKey()})
	}
	return page
}

func newCoinCard(c coins_view.CoinSummary) coinCard {
	return coinCard{
		ID:          c.ID,
		Symbol:      coins_view.DisplaySymbol(c.Symbol),
		Name:        c.Name,
		Image:       c.Image,
		Price:       coins_view.FormatUSD(c.CurrentPrice),
		MarketCap:   "$" + coins_view.FormatAmount(c.MarketCap),
		Change:      coins_view.FormatPercent(c.PriceChangePercentage24h),
		ChangeClass: coins_view.ChangeClass(c.PriceChangePercentage24h),
	}
}

// handleCoinDetailsPage loads the coin record and its chart concurrently.
// A failed chart is shown inline; a failed record fails the page.
func (s *Server) handleCoinDetailsPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	adapter := coingecko_market_chart.NewAdapter(s.marketChartService)
	defer adapter.Close()

	var (
		detail *coingecko_coins.CoinDetail
		chart  coingecko_market_chart.State
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		d, err := s.coinsService.Coin(ctx, id, r)
		if err != nil {
			return err
		}
		detail = d
		return nil
	})
	g.Go(func() error {
		chart = adapter.LoadAndWait(ctx, id)
		return nil
	})

	if err := g.Wait(); err != nil {
		var fetchErr *coingecko_coins.CoinFetchError
		if errors.As(err, &fetchErr) && fetchErr.NotFound() {
			s.renderPage(w, http.StatusNotFound, "not_found.html", notFoundPage{Path: r.URL.Path})
			return
		}
		s.renderPage(w, http.StatusBadGateway, "coin.html", detailPage{ID: id, Name: id, Error: err.Error()})
		return
	}

	s.renderPage(w, http.StatusOK, "coin.html", newDetailPage(detail, chart))
}

func newDetailPage(c *coingecko_coins.CoinDetail, chart coingecko_market_chart.State) detailPage {
	md := c.MarketData
	usd := func(values coingecko_coins.CurrencyValues) string {
		v, ok := values.In(coingecko_coins.Currency)
		if !ok {
			return "n/a"
		}
		return coins_view.FormatUSD(v)
	}

	totalSupply := "n/a"
	if md.TotalSupply.Valid {
		totalSupply = coins_view.FormatAmount(md.TotalSupply.Decimal)
	}
	marketCap := "n/a"
	if v, ok := md.MarketCap.In(coingecko_coins.Currency); ok {
		marketCap = "$" + coins_view.FormatAmount(v)
	}

	page := detailPage{
		ID:          c.ID,
		Name:        c.Name,
		Symbol:      coins_view.DisplaySymbol(c.Symbol),
		Rank:        c.MarketCapRank,
		Image:       c.Image.Large,
		Summary:     c.Summary(),
		Price:       usd(md.CurrentPrice),
		Change:      coins_view.FormatPercent(md.PriceChangePercentage24h),
		ChangeClass: coins_view.ChangeClass(md.PriceChangePercentage24h),
		Fields: []detailField{
			{"Market cap", marketCap},
			{"24h high", usd(md.High24h)},
			{"24h low", usd(md.Low24h)},
			{"24h change", signedUSD(md.PriceChange24h) + " (" + coins_view.FormatPercent(md.PriceChangePercentage24h) + ")"},
			{"Circulating supply", coins_view.FormatAmount(md.CirculatingSupply)},
			{"Total supply", totalSupply},
			{"All-time high", usd(md.ATH) + formatDate(md.ATHDate[coingecko_coins.Currency])},
			{"All-time low", usd(md.ATL) + formatDate(md.ATLDate[coingecko_coins.Currency])},
		},
		Homepage:   c.Homepage(),
		Explorer:   c.Explorer(),
		Categories: c.Categories,
		Chart:      newChartView(chart),
	}
	if updated := c.UpdatedAt(); !updated.IsZero() {
		page.Updated = humanize.Time(updated)
	}
	return page
}

func signedUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + coins_view.FormatUSD(d.Abs())
	}
	return coins_view.FormatUSD(d)
}

func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return " on " + t.Format("2006-01-02")
}

func (s *Server) handleNotFoundPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusNotFound, "not_found.html", notFoundPage{Path: r.URL.Path})
}
