package coingecko_common

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// IClient issues GET requests against a CoinGecko-compatible API
type IClient interface {
	Get(ctx context.Context, baseURL, path string, params map[string]string) (*Response, error)
	Execute(ctx context.Context, rb *CoingeckoRequestBuilder) (*Response, error)
}

// Client authenticates requests with the preferred API key and makes exactly one attempt.
// A key rejected with 401, 403 or 429 is put in backoff for later requests.
type Client struct {
	http   *HTTPClient
	keys   IAPIKeyManager
	logger *zap.Logger
}

func NewClient(httpClient *HTTPClient, keys IAPIKeyManager, logger *zap.Logger) *Client {
	return &Client{
		http:   httpClient,
		keys:   keys,
		logger: logger,
	}
}

func (c *Client) Get(ctx context.Context, baseURL, path string, params map[string]string) (*Response, error) {
	return c.Execute(ctx, NewCoingeckoRequestBuilder(baseURL, path).WithParams(params))
}

// Execute sends the request built by rb, authenticated with the preferred key.
func (c *Client) Execute(ctx context.Context, rb *CoingeckoRequestBuilder) (*Response, error) {
	key := APIKey{Type: NoKey}
	if c.keys != nil {
		key = c.keys.SelectKey()
	}

	resp, err := c.http.Do(ctx, rb.WithApiKey(key).Build())
	if statusErr, ok := AsStatusError(err); ok && key.Key != "" && IsKeyRejection(statusErr.StatusCode) {
		c.logger.Warn("api key rejected",
			zap.Stringer("key_type", key.Type),
			zap.Int("status", statusErr.StatusCode))
		c.keys.MarkKeyAsFailed(key.Key)
	}
	return resp, err
}

// GetJSON performs Get and decodes the body into v.
func GetJSON(ctx context.Context, client IClient, baseURL, path string, params map[string]string, v interface{}) error {
	resp, err := client.Get(ctx, baseURL, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
