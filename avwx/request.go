package avwx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/s0up4200/goavwx/decode"
)

// ResponseMeta describes a completed API call. It is passed to the hook
// registered with WithResponseHook, including for error responses.
type ResponseMeta struct {
	Endpoint   string
	Method     string
	StatusCode int
	URL        string
	Header     http.Header
	Duration   time.Duration
	Size       int64
}

// dispatch sends a single request and returns the parsed JSON body.
// endpoint is a short name used for logs and metrics.
func (c *Client) dispatch(ctx context.Context, endpoint, method, rawURL, body string) (gjson.Result, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return gjson.Result{}, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	req := c.http.R().SetContext(ctx)
	if method == http.MethodPost {
		req.SetHeader("Content-Type", "text/plain").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, rawURL)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.ObserveRequest(endpoint, method, 0, elapsed)
		c.metrics.ObserveError(endpoint, "transport")
		c.logger.Debug().
			Err(err).
			Str("endpoint", endpoint).
			Str("method", method).
			Dur("elapsed", elapsed).
			Msg("AVWX request failed")
		return gjson.Result{}, fmt.Errorf("request failed: %w", err)
	}

	meta := ResponseMeta{
		Endpoint:   endpoint,
		Method:     method,
		StatusCode: resp.StatusCode(),
		URL:        resp.Request.URL,
		Header:     resp.Header(),
		Duration:   elapsed,
		Size:       resp.Size(),
	}
	c.metrics.ObserveRequest(endpoint, method, meta.StatusCode, elapsed)
	if c.onResponse != nil {
		c.onResponse(meta)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Str("url", meta.URL).
		Int("status", meta.StatusCode).
		Int64("size", meta.Size).
		Dur("elapsed", elapsed).
		Msg("AVWX request completed")

	if !resp.IsSuccess() {
		apiErr := classifyError(meta.StatusCode, resp.Body())
		c.metrics.ObserveError(endpoint, errorType(apiErr))
		return gjson.Result{}, apiErr
	}

	res, err := decode.Parse(resp.Body())
	if err != nil {
		c.metrics.ObserveError(endpoint, errorType(err))
		return gjson.Result{}, err
	}
	return res, nil
}

// shouldRetry retries transport failures, rate limiting and server errors.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// restyLogger routes resty's internal messages to zerolog.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}
