package coins_view

import (
	"slices"
	"strings"
)

// NoMatchesMessage is shown when Transform returns nothing
const NoMatchesMessage = "No matching coins"

// Transform filters and sorts coins for display. The input is never modified.
func Transform(coins []CoinSummary, state ListViewState) []CoinSummary {
	return Sort(Filter(coins, state.Filter()), state.SortKey())
}

// Filter keeps coins whose name or symbol contains filter, case-insensitively.
// An empty filter keeps everything. Always returns a new slice.
func Filter(coins []CoinSummary, filter string) []CoinSummary {
	needle := strings.ToLower(filter)
	out := make([]CoinSummary, 0, len(coins))
	for _, c := range coins {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Symbol), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Sort returns a stably sorted copy of coins. SortNone keeps the given order.
func Sort(coins []CoinSummary, key SortKey) []CoinSummary {
	out := slices.Clone(coins)
	if cmp := comparatorFor(key); cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}
