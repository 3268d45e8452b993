package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the AVWX client metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	ErrorsTotal         *prometheus.CounterVec
	DecodeWarningsTotal *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them with reg.
// Pass nil to create unregistered collectors.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of AVWX API requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "AVWX API request duration in seconds by endpoint and method",
				Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"endpoint", "method"},
		),

		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of AVWX API errors by type",
			},
			[]string{"error_type", "endpoint"},
		),

		DecodeWarningsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decode_warnings_total",
				Help:      "Total number of response fields that did not match their schema",
			},
			[]string{"endpoint"},
		),
	}
}

// ObserveRequest records one completed request. status is 0 when no response
// was received.
func (c *Collector) ObserveRequest(endpoint, method string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	label := "none"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	c.RequestsTotal.WithLabelValues(endpoint, method, label).Inc()
	c.RequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

// ObserveError records a failed request.
func (c *Collector) ObserveError(endpoint, errorType string) {
	if c == nil {
		return
	}
	c.ErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// ObserveDecodeWarnings records schema mismatches found in a response.
func (c *Collector) ObserveDecodeWarnings(endpoint string, count int) {
	if c == nil || count == 0 {
		return
	}
	c.DecodeWarningsTotal.WithLabelValues(endpoint).Add(float64(count))
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, for pickup by the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
