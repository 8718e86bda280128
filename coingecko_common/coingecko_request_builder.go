package coingecko_common

import (
	"net/url"
	"strings"
)

// buildURL combines a base URL with a path. An empty path keeps the base as is.
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")
	if trimmedPath == "" {
		return baseURL
	}
	return baseURL + "/" + trimmedPath
}

// Request is a fully built upstream GET request
type Request struct {
	URL     string
	Headers map[string]string
	Key     APIKey
}

// CoingeckoRequestBuilder implements the Builder pattern for CoinGecko API requests
type CoingeckoRequestBuilder struct {
	baseURL   string
	apiPath   string
	params    url.Values
	apiKey    APIKey
	userAgent string
	headers   map[string]string
}

func NewCoingeckoRequestBuilder(baseURL, apiPath string) *CoingeckoRequestBuilder {
	return &CoingeckoRequestBuilder{
		baseURL:   baseURL,
		apiPath:   apiPath,
		params:    url.Values{},
		userAgent: UserAgent,
		headers:   map[string]string{"Accept": "application/json"},
	}
}

// With sets a query parameter
func (rb *CoingeckoRequestBuilder) With(key, value string) *CoingeckoRequestBuilder {
	rb.params.Set(key, value)
	return rb
}

// WithParams sets every parameter in params
func (rb *CoingeckoRequestBuilder) WithParams(params map[string]string) *CoingeckoRequestBuilder {
	for key, value := range params {
		rb.params.Set(key, value)
	}
	return rb
}

// WithCurrency adds vs_currency parameter
func (rb *CoingeckoRequestBuilder) WithCurrency(currency string) *CoingeckoRequestBuilder {
	if currency != "" {
		rb.params.Set("vs_currency", currency)
	}
	return rb
}

// WithApiKey authenticates the request with key; NoKey is a no-op
func (rb *CoingeckoRequestBuilder) WithApiKey(key APIKey) *CoingeckoRequestBuilder {
	if key.Key != "" {
		rb.apiKey = key
	}
	return rb
}

func (rb *CoingeckoRequestBuilder) WithHeader(name, value string) *CoingeckoRequestBuilder {
	rb.headers[name] = value
	return rb
}

func (rb *CoingeckoRequestBuilder) WithUserAgent(userAgent string) *CoingeckoRequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL with an encoded, key-sorted query
func (rb *CoingeckoRequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)
	if len(rb.params) == 0 {
		return fullPath
	}
	return fullPath + "?" + rb.params.Encode()
}

func (rb *CoingeckoRequestBuilder) Build() *Request {
	headers := make(map[string]string, len(rb.headers)+2)
	for name, value := range rb.headers {
		headers[name] = value
	}
	headers["User-Agent"] = rb.userAgent
	if name, value := rb.apiKey.Header(); name != "" {
		headers[name] = value
	}

	return &Request{
		URL:     rb.BuildURL(),
		Headers: headers,
		Key:     rb.apiKey,
	}
}
