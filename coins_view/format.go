package coins_view

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Change direction classes used by the list and detail views
const (
	ChangeUp   = "up"
	ChangeDown = "down"
	ChangeFlat = "flat"
)

// FormatUSD renders a price with thousands separators. Sub-dollar prices
// keep six decimals so small-cap tokens stay readable.
func FormatUSD(d decimal.Decimal) string {
	places := int32(2)
	if d.Abs().LessThan(decimal.NewFromInt(1)) && !d.IsZero() {
		places = 6
	}
	return "$" + humanize.CommafWithDigits(d.Round(places).InexactFloat64(), int(places))
}

// FormatAmount renders a whole-unit amount such as market cap or supply.
func FormatAmount(d decimal.Decimal) string {
	return humanize.Comma(d.Round(0).IntPart())
}

// FormatPercent renders a signed percentage with two decimals.
func FormatPercent(d decimal.Decimal) string {
	s := d.StringFixed(2) + "%"
	if d.IsPositive() && !strings.HasPrefix(s, "0.00") {
		return "+" + s
	}
	return s
}

// ChangeClass classifies a 24h change for colouring.
func ChangeClass(d decimal.Decimal) string {
	switch d.Round(2).Sign() {
	case 1:
		return ChangeUp
	case -1:
		return ChangeDown
	default:
		return ChangeFlat
	}
}

// DisplaySymbol is the ticker as shown on cards
func DisplaySymbol(symbol string) string {
	return strings.ToUpper(symbol)
}
