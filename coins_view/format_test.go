package coins_view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"67890.123", "$67,890.12"},
		{"1", "$1"},
		{"0.000012345", "$0.000012"},
		{"0", "$0"},
		{"-1234.5", "$-1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234,567,890", FormatAmount(decimal.RequireFromString("1234567889.6")))
	assert.Equal(t, "0", FormatAmount(decimal.Zero))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+2.10%", FormatPercent(decimal.RequireFromString("2.1")))
	assert.Equal(t, "-0.80%", FormatPercent(decimal.RequireFromString("-0.8")))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
	assert.Equal(t, "0.00%", FormatPercent(decimal.RequireFromString("0.001")))
}

func TestChangeClass(t *testing.T) {
	assert.Equal(t, ChangeUp, ChangeClass(decimal.RequireFromString("0.5")))
	assert.Equal(t, ChangeDown, ChangeClass(decimal.RequireFromString("-3")))
	assert.Equal(t, ChangeFlat, ChangeClass(decimal.RequireFromString("0.001")))
}

func TestDisplaySymbol(t *testing.T) {
	assert.Equal(t, "BTC", DisplaySymbol("btc"))
}
