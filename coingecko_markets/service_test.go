package coingecko_markets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	"github.com/cryptochainz/market-dashboard/config"
)

const sampleMarkets = `[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":45000,"market_cap":850000000000},{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3000,"market_cap":360000000000}]`

type upstream struct {
	server *httptest.Server
	hits   int32
	last   atomic.Value
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.hits, 1)
		u.last.Store(r.URL.Query())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) lastQuery() url.Values {
	q, _ := u.last.Load().(url.Values)
	return q
}

func newTestService(endpoint string, maxPerPage int) *Service {
	cfg := config.Default()
	cfg.CoingeckoMarkets.APIURL = endpoint
	cfg.CoingeckoMarkets.MaxPerPage = maxPerPage

	httpClient := cg.NewHTTPClient(cg.DefaultClientOptions(), nil, nil, zap.NewNop())
	return NewService(cfg, cg.NewClient(httpClient, nil, zap.NewNop()), zap.NewNop())
}

func TestService_Markets_FixedQuery(t *testing.T) {
	up := newUpstream(t, http.StatusOK, sampleMarkets)
	service := newTestService(up.server.URL+"/api/v3/coins/markets", 0)

	body, err := service.Markets(context.Background(), "")
	require.NoError(t, err)
	assert.JSONEq(t, sampleMarkets, string(body))
	assert.True(t, service.Healthy())

	q := up.lastQuery()
	assert.Equal(t, "usd", q.Get("vs_currency"))
	assert.Equal(t, "market_cap_desc", q.Get("order"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "false", q.Get("sparkline"))
	assert.Equal(t, DefaultLimit, q.Get("per_page"))
}

func TestService_Markets_PerPagePassthrough(t *testing.T) {
	for _, limit := range []string{"5", "50", "250", "abc", "-1"} {
		t.Run(limit, func(t *testing.T) {
			up := newUpstream(t, http.StatusOK, `[]`)
			service := newTestService(up.server.URL, 0)

			_, err := service.Markets(context.Background(), limit)
			require.NoError(t, err)
			assert.Equal(t, limit, up.lastQuery().Get("per_page"))
		})
	}
}

func TestService_Markets_MissingURL(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `[]`)
	service := newTestService("", 0)

	_, err := service.Markets(context.Background(), "10")
	assert.True(t, errors.Is(err, ErrMissingURL))
	assert.Equal(t, "Missing COINGECKO_API_URL in env", err.Error())
	assert.Equal(t, int32(0), atomic.LoadInt32(&up.hits))
}

func TestService_Markets_UpstreamStatus(t *testing.T) {
	up := newUpstream(t, http.StatusTooManyRequests, `{"status":"rate limited"}`)
	service := newTestService(up.server.URL, 0)

	_, err := service.Markets(context.Background(), "10")
	statusErr, ok := cg.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&up.hits))
	assert.False(t, service.Healthy())
}

func TestService_Markets_InvalidJSON(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `not json`)
	service := newTestService(up.server.URL, 0)

	_, err := service.Markets(context.Background(), "10")
	require.Error(t, err)
	_, isStatus := cg.AsStatusError(err)
	assert.False(t, isStatus)
	assert.Contains(t, errors.Cause(err).Error(), "invalid character")
}

func TestService_Markets_MaxPerPage(t *testing.T) {
	tests := []struct {
		limit   string
		wantErr bool
	}{
		{"10", false},
		{"250", false},
		{"251", true},
		{"0", true},
		{"ten", true},
	}

	for _, tt := range tests {
		t.Run(tt.limit, func(t *testing.T) {
			up := newUpstream(t, http.StatusOK, `[]`)
			service := newTestService(up.server.URL, 250)

			_, err := service.Markets(context.Background(), tt.limit)
			if tt.wantErr {
				var limitErr *LimitError
				require.True(t, errors.As(err, &limitErr))
				assert.Equal(t, 250, limitErr.Max)
				assert.Equal(t, int32(0), atomic.LoadInt32(&up.hits))
				return
			}
			assert.NoError(t, err)
		})
	}
}
