package avwx

import (
	"net/http"
	"time"

	"github.com/s0up4200/goavwx/metrics"
)

// DefaultBaseURL is the public AVWX REST endpoint.
const DefaultBaseURL = "https://avwx.rest/api/"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryWait    time.Duration
	retryMaxWait time.Duration
	userAgent    string
	httpClient   *http.Client
	metrics      *metrics.Collector
	onResponse   func(ResponseMeta)
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:      DefaultBaseURL,
		timeout:      30 * time.Second,
		retryWait:    time.Second,
		retryMaxWait: 5 * time.Second,
		userAgent:    "goavwx",
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retry attempts for transport
// errors, 429 and 5xx responses.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryWait sets the initial and maximum backoff between retries.
func WithRetryWait(wait, maxWait time.Duration) Option {
	return func(o *clientOptions) {
		o.retryWait = wait
		o.retryMaxWait = maxWait
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient uses hc as the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithMetrics reports every request to m.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *clientOptions) {
		o.metrics = m
	}
}

// WithResponseHook calls fn after every request that got an HTTP response,
// successful or not. fn runs on the calling goroutine.
func WithResponseHook(fn func(ResponseMeta)) Option {
	return func(o *clientOptions) {
		o.onResponse = fn
	}
}
