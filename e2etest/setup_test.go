package e2etest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/config"
	"github.com/cryptochainz/market-dashboard/core"
)

// TestEnv represents a test environment
type TestEnv struct {
	Registry      *core.Registry
	MockServer    *MockServer
	Server        *httptest.Server
	Config        *config.Config
	ServerBaseURL string
}

// SetupTest starts the mock upstream and the dashboard wired against it
func SetupTest(t *testing.T, opts TestConfigOptions) *TestEnv {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	mockServer := NewMockServer()

	cfg, err := loadTestConfig(t.TempDir(), mockServer.GetURL(), opts)
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	registry, server, err := core.Setup(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, registry.StartAll(ctx))

	httpServer := httptest.NewServer(server.Handler())

	env := &TestEnv{
		Registry:      registry,
		MockServer:    mockServer,
		Server:        httpServer,
		Config:        cfg,
		ServerBaseURL: httpServer.URL,
	}
	t.Cleanup(func() {
		httpServer.Close()
		registry.StopAll()
		mockServer.Close()
		cancel()
	})
	return env
}

// get fetches path from the dashboard and returns the response with its body read
func (env *TestEnv) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}
