package coins_view

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coin(id, symbol, name string, price, marketCap, change float64) CoinSummary {
	return CoinSummary{
		ID:                       id,
		Symbol:                   symbol,
		Name:                     name,
		CurrentPrice:             decimal.NewFromFloat(price),
		MarketCap:                decimal.NewFromFloat(marketCap),
		PriceChangePercentage24h: decimal.NewFromFloat(change),
	}
}

func sampleCoins() []CoinSummary {
	return []CoinSummary{
		coin("bitcoin", "btc", "Bitcoin", 63000, 1200, -0.8),
		coin("ethereum", "eth", "Ethereum", 3000, 360, 2.1),
		coin("wrapped-bitcoin", "wbtc", "Wrapped Bitcoin", 62900, 10, -0.7),
		coin("tether", "usdt", "Tether", 1, 110, 0.01),
		coin("bitget-token", "bgb", "Bitget Token", 1.1, 2, 5.5),
	}
}

func ids(coins []CoinSummary) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.ID
	}
	return out
}

func TestTransform_SortsByMarketCapDesc(t *testing.T) {
	coins := []CoinSummary{
		coin("a", "a", "A", 1, 10, 0),
		coin("b", "b", "B", 1, 30, 0),
		coin("c", "c", "C", 1, 20, 0),
	}

	out := Transform(coins, NewListViewState())

	assert.Equal(t, []string{"b", "c", "a"}, ids(out))
}

func TestTransform_FilterBit(t *testing.T) {
	state := NewListViewState().WithFilter("bit")

	out := Transform(sampleCoins(), state)

	assert.Equal(t, []string{"bitcoin", "wrapped-bitcoin", "bitget-token"}, ids(out))
}

func TestFilter_SoundAndComplete(t *testing.T) {
	for _, filter := range []string{"", "BIT", "eth", "t", "zzz", "USDT"} {
		t.Run("filter="+filter, func(t *testing.T) {
			coins := sampleCoins()
			out := Filter(coins, filter)

			needle := strings.ToLower(filter)
			matches := func(c CoinSummary) bool {
				return strings.Contains(strings.ToLower(c.Name), needle) ||
					strings.Contains(strings.ToLower(c.Symbol), needle)
			}

			for _, c := range out {
				assert.True(t, matches(c), "%s should not be kept", c.ID)
			}
			kept := map[string]bool{}
			for _, c := range out {
				kept[c.ID] = true
			}
			for _, c := range coins {
				if matches(c) {
					assert.True(t, kept[c.ID], "%s should be kept", c.ID)
				}
			}
		})
	}
}

func TestTransform_NoMatches(t *testing.T) {
	out := Transform(sampleCoins(), NewListViewState().WithFilter("does-not-exist"))

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	coins := sampleCoins()
	before := ids(coins)

	_ = Transform(coins, NewListViewState().WithSortKey(SortPriceAsc))

	assert.Equal(t, before, ids(coins))
}

func TestSort_AllKeys(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortMarketCapDesc, []string{"bitcoin", "ethereum", "tether", "wrapped-bitcoin", "bitget-token"}},
		{SortMarketCapAsc, []string{"bitget-token", "wrapped-bitcoin", "tether", "ethereum", "bitcoin"}},
		{SortPriceDesc, []string{"bitcoin", "wrapped-bitcoin", "ethereum", "bitget-token", "tether"}},
		{SortPriceAsc, []string{"tether", "bitget-token", "ethereum", "wrapped-bitcoin", "bitcoin"}},
		{SortChangeDesc, []string{"bitget-token", "ethereum", "tether", "wrapped-bitcoin", "bitcoin"}},
		{SortChangeAsc, []string{"bitcoin", "wrapped-bitcoin", "tether", "ethereum", "bitget-token"}},
		{SortNone, []string{"bitcoin", "ethereum", "wrapped-bitcoin", "tether", "bitget-token"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(sampleCoins(), tt.key)))
		})
	}
}

func TestSort_IsStable(t *testing.T) {
	coins := []CoinSummary{
		coin("first", "a", "A", 5, 100, 0),
		coin("second", "b", "B", 5, 100, 0),
		coin("third", "c", "C", 9, 50, 0),
		coin("fourth", "d", "D", 5, 100, 0),
	}

	assert.Equal(t, []string{"first", "second", "fourth", "third"}, ids(Sort(coins, SortMarketCapDesc)))
	assert.Equal(t, []string{"first", "second", "fourth", "third"}, ids(Sort(coins, SortPriceAsc)))
}

func TestDecodeCoins(t *testing.T) {
	coins, err := DecodeCoins([]byte(`[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"b.png","current_price":63000.5,"market_cap":1240000000000,"price_change_percentage_24h":null,"total_volume":1}]`))
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "63000.5", coins[0].CurrentPrice.String())
	assert.True(t, coins[0].PriceChangePercentage24h.IsZero())

	_, err = DecodeCoins([]byte(`{"error":"nope"}`))
	assert.Error(t, err)
}
