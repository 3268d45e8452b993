package avwx

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/s0up4200/goavwx/decode"
	"github.com/s0up4200/goavwx/metrics"
)

// Client represents an AVWX API client. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	baseURL string
	auth    *Authenticator
	http    *resty.Client
	logger  zerolog.Logger
	metrics *metrics.Collector

	onResponse func(ResponseMeta)
}

// NewClient creates a new AVWX client. No request is made until the first
// call; use TestConnection to verify the key.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	auth, err := NewAuthenticator(apiKey)
	if err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if !strings.HasSuffix(options.baseURL, "/") {
		options.baseURL += "/"
	}
	if options.timeout < 0 {
		return nil, fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}

	var rc *resty.Client
	if options.httpClient != nil {
		rc = resty.NewWithClient(options.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetTimeout(options.timeout).
		SetRetryCount(options.maxRetries).
		SetRetryWaitTime(options.retryWait).
		SetRetryMaxWaitTime(options.retryMaxWait).
		AddRetryCondition(shouldRetry).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", options.userAgent).
		SetLogger(restyLogger{logger: logger})
	rc.OnBeforeRequest(auth.Apply)

	return &Client{
		baseURL: options.baseURL,
		auth:    auth,
		http:    rc,
		logger:  logger,
		metrics: options.metrics,

		onResponse: options.onResponse,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TestConnection checks that the API is reachable and accepts the key.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.GetStation(ctx, "KJFK", StationParams{Filter: "icao"})
	if err != nil {
		return fmt.Errorf("failed to connect to AVWX: %w", err)
	}

	c.logger.Debug().Msg("Successfully connected to AVWX")
	return nil
}

// request describes one API call.
type request struct {
	endpoint       string
	method         string
	path           string
	primary        string
	includePrimary bool
	params         []Param
	body           string
}

func (r request) url(base string) string {
	return BuildURL(base, r.path, r.primary, r.includePrimary, r.params)
}

func getRequest(endpoint, path, primary string, params ...Param) request {
	return request{
		endpoint:       endpoint,
		method:         http.MethodGet,
		path:           path,
		primary:        primary,
		includePrimary: primary != "",
		params:         params,
	}
}

func parseRequest(endpoint, path, body string, params ...Param) request {
	return request{
		endpoint: endpoint,
		method:   http.MethodPost,
		path:     path,
		params:   params,
		body:     body,
	}
}

// fetchOne performs r and decodes the object it returns.
func fetchOne[T any, PT decode.Schema[T]](ctx context.Context, c *Client, r request) (*T, error) {
	res, err := c.dispatch(ctx, r.endpoint, r.method, r.url(c.baseURL), r.body)
	if err != nil {
		return nil, err
	}
	v, warnings := decode.Value[T, PT](res)
	c.reportWarnings(r.endpoint, warnings)
	return &v, nil
}

// fetchMany performs r and decodes the array of objects it returns.
func fetchMany[T any, PT decode.Schema[T]](ctx context.Context, c *Client, r request) ([]T, error) {
	res, err := c.dispatch(ctx, r.endpoint, r.method, r.url(c.baseURL), r.body)
	if err != nil {
		return nil, err
	}
	vs, warnings := decode.Values[T, PT](res)
	c.reportWarnings(r.endpoint, warnings)
	return vs, nil
}

func (c *Client) reportWarnings(endpoint string, warnings []decode.Warning) {
	if len(warnings) == 0 {
		return
	}
	c.metrics.ObserveDecodeWarnings(endpoint, len(warnings))
	for _, w := range warnings {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Str("path", w.Path).
			Str("want", w.Want).
			Str("got", w.Got).
			Msg("Response field did not match schema")
	}
}
