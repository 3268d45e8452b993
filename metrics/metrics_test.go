package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("avwx", reg)

	c.ObserveRequest("metar", "GET", 200, 150*time.Millisecond)
	c.ObserveRequest("metar", "GET", 200, 50*time.Millisecond)
	c.ObserveRequest("metar", "GET", 0, time.Second)
	c.ObserveRequest("parse/metar", "POST", 200, 80*time.Millisecond)
	c.ObserveError("metar", "auth")
	c.ObserveDecodeWarnings("metar", 3)
	c.ObserveDecodeWarnings("metar", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues("metar", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues("metar", "GET", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ErrorsTotal.WithLabelValues("auth", "metar")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.DecodeWarningsTotal.WithLabelValues("metar")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.RequestDuration))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveRequest("metar", "GET", 200, time.Second)
		c.ObserveError("metar", "auth")
		c.ObserveDecodeWarnings("metar", 1)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("avwx", reg)
	c.ObserveRequest("taf", "GET", 200, time.Second)

	path := filepath.Join(t.TempDir(), "avwx.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `avwx_requests_total{endpoint="taf",method="GET",status="200"} 1`)
	assert.Contains(t, string(data), `avwx_request_duration_seconds_count{endpoint="taf",method="GET"} 1`)
}
