package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/goavwx/avwx"
	"github.com/s0up4200/goavwx/config"
	"github.com/s0up4200/goavwx/format"
)

func setupTestServer(t *testing.T, handler http.HandlerFunc) avwx.API {
	t.Helper()

	logger = zerolog.Nop()
	formatter = format.NewConsoleFormatter(format.Options{})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api, err := avwx.NewClient("test-key", zerolog.Nop(), avwx.WithBaseURL(server.URL))
	require.NoError(t, err)
	return api
}

func TestReadReport(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    string
		wantErr bool
	}{
		{name: "args joined", args: []string{"KJFK", "011251Z", "31015KT"}, want: "KJFK 011251Z 31015KT"},
		{name: "dash reads stdin", args: []string{"-"}, stdin: "  KJFK 011251Z\n", want: "KJFK 011251Z"},
		{name: "no args reads stdin", stdin: "TAF KJFK", want: "TAF KJFK"},
		{name: "empty stdin", args: []string{"-"}, stdin: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readReport(tt.args, strings.NewReader(tt.stdin))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFanOut(t *testing.T) {
	logger = zerolog.Nop()
	errBoom := errors.New("boom")

	fetch := func(_ context.Context, ident string) (string, error) {
		if strings.HasPrefix(ident, "BAD") {
			return "", errBoom
		}
		return strings.ToLower(ident), nil
	}

	t.Run("keeps order and skips failures", func(t *testing.T) {
		got, err := fanOut(context.Background(), []string{"KJFK", "BAD1", "KLGA", "KEWR", "KBOS", "KPHL", "KDCA"}, fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"kjfk", "klga", "kewr", "kbos", "kphl", "kdca"}, got)
	})

	t.Run("all failed", func(t *testing.T) {
		_, err := fanOut(context.Background(), []string{"BAD1", "BAD2"}, fetch)
		require.Error(t, err)
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "BAD2")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fanOut(ctx, []string{"KJFK"}, fetch)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetchReports(t *testing.T) {
	api := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/metar/KJFK":
			_, _ = io.WriteString(w, `{"station":"KJFK","flight_rules":"IFR"}`)
		case "/metar/KLGA":
			_, _ = io.WriteString(w, `{"station":"KLGA","flight_rules":"VFR"}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"Station not found","param":"station"}`)
		}
	})

	reports, err := fetchReports(context.Background(), api, avwx.ReportMetar, []string{"KJFK", "XXXX", "KLGA"}, avwx.ReportParams{})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	first, ok := reports[0].(*avwx.Metar)
	require.True(t, ok)
	assert.Equal(t, "KJFK", first.Station)
	assert.Equal(t, "KLGA", reports[1].(*avwx.Metar).Station)

	_, err = fetchReports(context.Background(), api, avwx.ReportMetar, []string{"XXXX"}, avwx.ReportParams{})
	var stationErr *avwx.StationError
	assert.ErrorAs(t, err, &stationErr)
}

func TestParseReport(t *testing.T) {
	var gotPath, gotBody string
	api := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		gotPath, gotBody = r.URL.Path, string(body)
		_, _ = io.WriteString(w, `{"station":"KJFK","forecast":[{"type":"FROM","flight_rules":"VFR","raw":"KJFK 0112/0218 31012KT"}]}`)
	})

	t.Run("taf", func(t *testing.T) {
		result, console, err := parseReport(context.Background(), api, "TAF", "KJFK 0112/0218 31012KT", avwx.ParseParams{})
		require.NoError(t, err)
		assert.Equal(t, "/parse/taf", gotPath)
		assert.Equal(t, "KJFK 0112/0218 31012KT", gotBody)

		taf, ok := result.(*avwx.Taf)
		require.True(t, ok)
		assert.Len(t, taf.Forecast, 1)
		assert.Contains(t, console(), "TAF KJFK")
	})

	t.Run("nbm uses kind flag", func(t *testing.T) {
		parseKind = "nbh"
		t.Cleanup(func() { parseKind = "" })

		_, _, err := parseReport(context.Background(), api, "nbm", "KJFK NBM V4.1 NBH GUIDANCE", avwx.ParseParams{})
		require.NoError(t, err)
		assert.Equal(t, "/parse/nbm/nbh", gotPath)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, _, err := parseReport(context.Background(), api, "sigwx", "text", avwx.ParseParams{})
		assert.ErrorIs(t, err, avwx.ErrUnknownReportKind)
	})
}

func TestSetupLogger(t *testing.T) {
	setupLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{Level: "bogus", Format: "console"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
