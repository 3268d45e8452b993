package avwx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/s0up4200/goavwx/decode"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid avwx configuration")
	// ErrInvalidMethod indicates an HTTP method other than GET or POST
	ErrInvalidMethod = errors.New("invalid request method")
	// ErrUnknownReportKind indicates a report kind the API does not serve
	ErrUnknownReportKind = errors.New("unknown report kind")
	// ErrUnknownForecastKind indicates an NBM or GFS product the API does not serve
	ErrUnknownForecastKind = errors.New("unknown forecast kind")
	// ErrInvalidJSON indicates a successful response whose body is not JSON
	ErrInvalidJSON = decode.ErrInvalidJSON
	// ErrValidation indicates the API rejected a parameter (HTTP 400)
	ErrValidation = errors.New("request failed validation")
	// ErrUnauthorized indicates authentication failure (HTTP 401/403)
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrBadStatus indicates any other non-2xx response
	ErrBadStatus = errors.New("unexpected response status")
)

// StatusError is implemented by every error produced from a non-2xx response.
type StatusError interface {
	error
	HTTPStatus() int
}

// StationError is returned for HTTP 400. The API uses it to report an
// unknown station or an invalid parameter.
type StationError struct {
	StatusCode int
	Message    string
	Param      string
	Help       string
	Timestamp  string
}

// Error implements the error interface
func (e *StationError) Error() string {
	msg := fmt.Sprintf("avwx API error: status %d: %s", e.StatusCode, e.Message)
	if e.Param != "" {
		msg += fmt.Sprintf(" (param %s)", e.Param)
	}
	return msg
}

func (e *StationError) Unwrap() error   { return ErrValidation }
func (e *StationError) HTTPStatus() int { return e.StatusCode }

// AuthError is returned for HTTP 401 and 403.
type AuthError struct {
	StatusCode int
	Message    string
	Help       string
	Sample     string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return fmt.Sprintf("avwx API error: status %d: %s", e.StatusCode, e.Message)
}

func (e *AuthError) Unwrap() error   { return ErrUnauthorized }
func (e *AuthError) HTTPStatus() int { return e.StatusCode }

// BadStatusError is returned for every other non-2xx response.
type BadStatusError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *BadStatusError) Error() string {
	return fmt.Sprintf("avwx API error: status %d: %s", e.StatusCode, e.Message)
}

func (e *BadStatusError) Unwrap() error   { return ErrBadStatus }
func (e *BadStatusError) HTTPStatus() int { return e.StatusCode }

// IsNotFound reports whether the response was a 404
func (e *BadStatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorBody is the JSON error payload the API sends with 4xx responses.
type errorBody struct {
	Error     string
	Param     string
	Help      string
	Timestamp string
	Sample    string
}

func (b *errorBody) DecodeFields(o *decode.Object) {
	b.Error = o.String("error")
	b.Param = o.String("param")
	b.Help = o.String("help")
	b.Timestamp = o.String("timestamp")
	b.Sample = o.String("sample")
}

// classifyError maps a non-2xx response to its typed error. Bodies that are
// not a JSON object are carried through as the message.
func classifyError(status int, body []byte) error {
	var eb errorBody
	if res, err := decode.Parse(body); err == nil && res.IsObject() {
		eb, _ = decode.Value[errorBody](res)
	} else {
		eb.Error = string(body)
	}

	switch {
	case status == http.StatusBadRequest:
		return &StationError{
			StatusCode: status,
			Message:    eb.Error,
			Param:      eb.Param,
			Help:       eb.Help,
			Timestamp:  eb.Timestamp,
		}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		msg := eb.Error
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &AuthError{
			StatusCode: status,
			Message:    msg,
			Help:       eb.Help,
			Sample:     eb.Sample,
		}
	default:
		return &BadStatusError{
			StatusCode: status,
			Message:    "Unknown Error",
			Body:       string(body),
		}
	}
}

// errorType is the metrics label for err.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnauthorized):
		return "auth"
	case errors.Is(err, ErrBadStatus):
		return "status"
	case errors.Is(err, ErrInvalidJSON):
		return "json"
	default:
		return "transport"
	}
}
