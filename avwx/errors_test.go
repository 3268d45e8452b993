package avwx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "validation",
			status:   400,
			body:     `{"error": "KXXX is not a valid ICAO or IATA code", "param": "station", "help": "See docs", "timestamp": "2024-03-01T12:00:00Z"}`,
			sentinel: ErrValidation,
			check: func(t *testing.T, err error) {
				var se *StationError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, 400, se.StatusCode)
				assert.Equal(t, "KXXX is not a valid ICAO or IATA code", se.Message)
				assert.Equal(t, "station", se.Param)
				assert.Equal(t, "See docs", se.Help)
				assert.Equal(t, "2024-03-01T12:00:00Z", se.Timestamp)
				assert.Contains(t, se.Error(), "param station")
			},
		},
		{
			name:     "validation with plain text body",
			status:   400,
			body:     "bad request",
			sentinel: ErrValidation,
			check: func(t *testing.T, err error) {
				var se *StationError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "bad request", se.Message)
				assert.Empty(t, se.Param)
			},
		},
		{
			name:     "unauthorized",
			status:   401,
			body:     `{"error": "Token is invalid", "sample": "Authorization: TOKEN"}`,
			sentinel: ErrUnauthorized,
			check: func(t *testing.T, err error) {
				var ae *AuthError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, 401, ae.StatusCode)
				assert.Equal(t, "Token is invalid", ae.Message)
				assert.Equal(t, "Authorization: TOKEN", ae.Sample)
			},
		},
		{
			name:     "forbidden without body",
			status:   403,
			sentinel: ErrUnauthorized,
			check: func(t *testing.T, err error) {
				var ae *AuthError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, "Forbidden", ae.Message)
			},
		},
		{
			name:     "server error",
			status:   500,
			body:     "upstream exploded",
			sentinel: ErrBadStatus,
			check: func(t *testing.T, err error) {
				var be *BadStatusError
				require.ErrorAs(t, err, &be)
				assert.Equal(t, "Unknown Error", be.Message)
				assert.Equal(t, "upstream exploded", be.Body)
				assert.Equal(t, "avwx API error: status 500: Unknown Error", be.Error())
				assert.False(t, be.IsNotFound())
			},
		},
		{
			name:     "not found",
			status:   404,
			sentinel: ErrBadStatus,
			check: func(t *testing.T, err error) {
				var be *BadStatusError
				require.ErrorAs(t, err, &be)
				assert.True(t, be.IsNotFound())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError(tt.status, []byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var status StatusError
			require.ErrorAs(t, err, &status)
			assert.Equal(t, tt.status, status.HTTPStatus())

			tt.check(t, err)
		})
	}
}

func TestStatusErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to get metar for KJFK: %w", classifyError(401, nil))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "validation", errorType(classifyError(400, nil)))
	assert.Equal(t, "auth", errorType(classifyError(403, nil)))
	assert.Equal(t, "status", errorType(classifyError(502, nil)))
	assert.Equal(t, "json", errorType(ErrInvalidJSON))
	assert.Equal(t, "transport", errorType(errors.New("dial tcp: refused")))
}
