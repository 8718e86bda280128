package coingecko_common_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	cg "github.com/cryptochainz/market-dashboard/coingecko_common"
	mock_coingecko_common "github.com/cryptochainz/market-dashboard/coingecko_common/mocks"
)

type mockStatusHandler struct {
	mock.Mock
}

func (m *mockStatusHandler) OnRequest(status string) {
	m.Called(status)
}

func (m *mockStatusHandler) OnRateLimited() {
	m.Called()
}

func testOptions() cg.ClientOptions {
	opts := cg.DefaultClientOptions()
	opts.LogPrefix = "test"
	opts.RequestTimeout = 2 * time.Second
	return opts
}

func newRequest(url string) *cg.Request {
	return cg.NewCoingeckoRequestBuilder(url, "").Build()
}

func TestHTTPClient_Do_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, cg.UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	handler := &mockStatusHandler{}
	handler.On("OnRequest", cg.StatusSuccess).Once()

	client := cg.NewHTTPClient(testOptions(), handler, nil, zap.NewNop())
	resp, err := client.Do(context.Background(), newRequest(server.URL))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
	handler.AssertExpectations(t)
}

func TestHTTPClient_Do_StatusErrorIsNotRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer server.Close()

	handler := &mockStatusHandler{}
	handler.On("OnRateLimited").Once()
	handler.On("OnRequest", cg.StatusHTTPError).Once()

	client := cg.NewHTTPClient(testOptions(), handler, nil, zap.NewNop())
	resp, err := client.Do(context.Background(), newRequest(server.URL))

	require.Error(t, err)
	assert.Nil(t, resp)
	statusErr, ok := cg.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, `{"error":"slow down"}`, string(statusErr.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	handler.AssertExpectations(t)
}

func TestHTTPClient_Do_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	handler := &mockStatusHandler{}
	handler.On("OnRequest", cg.StatusFailed).Once()

	client := cg.NewHTTPClient(testOptions(), handler, nil, zap.NewNop())
	_, err := client.Do(context.Background(), newRequest(url))

	require.Error(t, err)
	_, isStatus := cg.AsStatusError(err)
	assert.False(t, isStatus)
	handler.AssertExpectations(t)
}

func TestHTTPClient_RateLimiting_WithLimiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	mockManager := mock_coingecko_common.NewMockIRateLimiterManager(ctrl)

	limiter := rate.NewLimiter(rate.Every(300*time.Millisecond), 1)
	mockManager.EXPECT().GetLimiter(cg.APIKey{}).Return(limiter).Times(2)

	client := cg.NewHTTPClient(testOptions(), nil, mockManager, zap.NewNop())

	start := time.Now()
	_, err := client.Do(context.Background(), newRequest(server.URL))
	require.NoError(t, err)
	_, err = client.Do(context.Background(), newRequest(server.URL))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
}

func TestHTTPClient_RateLimiting_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockManager := mock_coingecko_common.NewMockIRateLimiterManager(ctrl)

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	limiter.Allow()
	mockManager.EXPECT().GetLimiter(gomock.Any()).Return(limiter)

	handler := &mockStatusHandler{}
	handler.On("OnRequest", cg.StatusFailed).Once()

	client := cg.NewHTTPClient(testOptions(), handler, mockManager, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Do(ctx, newRequest("http://127.0.0.1:1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
	handler.AssertExpectations(t)
}

func TestClient_Get_MarksRejectedKey(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		key        cg.APIKey
		wantMarked bool
	}{
		{"unauthorized pro key", http.StatusUnauthorized, cg.APIKey{Key: "pro", Type: cg.ProKey}, true},
		{"rate limited demo key", http.StatusTooManyRequests, cg.APIKey{Key: "demo", Type: cg.DemoKey}, true},
		{"not found keeps key", http.StatusNotFound, cg.APIKey{Key: "demo", Type: cg.DemoKey}, false},
		{"no key is never marked", http.StatusTooManyRequests, cg.APIKey{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.key.Key != "" {
					name, value := tt.key.Header()
					assert.Equal(t, value, r.Header.Get(name))
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			ctrl := gomock.NewController(t)
			keys := mock_coingecko_common.NewMockIAPIKeyManager(ctrl)
			keys.EXPECT().SelectKey().Return(tt.key)
			if tt.wantMarked {
				keys.EXPECT().MarkKeyAsFailed(tt.key.Key)
			}

			client := cg.NewClient(cg.NewHTTPClient(testOptions(), nil, nil, zap.NewNop()), keys, zap.NewNop())
			_, err := client.Get(context.Background(), server.URL, "/coins/bitcoin", nil)

			statusErr, ok := cg.AsStatusError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, statusErr.StatusCode)
		})
	}
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		_, _ = w.Write([]byte(`{"id":"bitcoin"}`))
	}))
	defer server.Close()

	client := cg.NewClient(cg.NewHTTPClient(testOptions(), nil, nil, zap.NewNop()), nil, zap.NewNop())

	var out struct {
		ID string `json:"id"`
	}
	err := cg.GetJSON(context.Background(), client, server.URL, "coins/bitcoin", map[string]string{"vs_currency": "usd"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", out.ID)
}
