package coingecko_common

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ClientOptions configures the upstream transport
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "HTTP",
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// HTTPClient performs single-attempt GET requests behind a per-key rate limiter.
// Non-2xx responses are returned as *StatusError.
type HTTPClient struct {
	client         *resty.Client
	opts           ClientOptions
	statusHandler  IHttpStatusHandler
	limiterManager IRateLimiterManager
	logger         *zap.Logger
}

func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler, limiterManager IRateLimiterManager, logger *zap.Logger) *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	logger = logger.Named("http").With(zap.String("client", opts.LogPrefix))

	client := resty.New().
		SetTransport(transport).
		SetTimeout(opts.RequestTimeout).
		SetRetryCount(0).
		SetLogger(logger.Sugar())

	return &HTTPClient{
		client:         client,
		opts:           opts,
		statusHandler:  handler,
		limiterManager: limiterManager,
		logger:         logger,
	}
}

func (c *HTTPClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiterManager != nil {
		if limiter := c.limiterManager.GetLimiter(req.Key); limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				c.onRequest(StatusFailed)
				return nil, errors.Wrap(err, "rate limiter wait")
			}
		}
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		Get(req.URL)
	duration := time.Since(start)

	if err != nil {
		c.onRequest(StatusFailed)
		c.logger.Debug("request failed",
			zap.String("url", req.URL),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, errors.WithStack(err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		if resp.StatusCode() == http.StatusTooManyRequests && c.statusHandler != nil {
			c.statusHandler.OnRateLimited()
		}
		c.onRequest(StatusHTTPError)
		c.logger.Info("upstream returned error status",
			zap.String("url", req.URL),
			zap.Int("status", resp.StatusCode()),
			zap.String("retry_after", resp.Header().Get("Retry-After")),
			zap.Duration("duration", duration))
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			URL:        req.URL,
			Body:       resp.Body(),
		}
	}

	c.onRequest(StatusSuccess)
	c.logger.Debug("request completed",
		zap.String("url", req.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("duration", duration))

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
		Duration:   duration,
	}, nil
}

func (c *HTTPClient) onRequest(status string) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(status)
	}
}
