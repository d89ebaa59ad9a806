// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sai1025037768/volley/request"
	"github.com/sai1025037768/volley/retry"
)

// A MetricsCollector provides Prometheus metrics for the request
// lifecycle: totals, durations, in-flight gauge, retries, slow
// requests and terminal errors by kind. It is safe for concurrent use.
//
// Metrics are labeled by HTTP method only; URLs are deliberately kept
// out of labels to bound cardinality.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	retriesTotal     *prometheus.CounterVec
	slowTotal        *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetricsCollector creates a metrics collector registered on the
// default Prometheus registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector registered on
// the supplied registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "volley_requests_total",
				Help: "Total number of completed request lifecycles",
			},
			[]string{"method", "status"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "volley_request_duration_seconds",
				Help:    "Duration of request lifecycles in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		requestsInFlight: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "volley_requests_in_flight",
				Help: "Number of request lifecycles currently in flight",
			},
		),
		retriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "volley_retries_total",
				Help: "Total number of retried transport attempts",
			},
			[]string{"method"},
		),
		slowTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "volley_slow_requests_total",
				Help: "Total number of attempts exceeding the slow-request threshold",
			},
			[]string{"method"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "volley_errors_total",
				Help: "Total number of terminal errors by kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *MetricsCollector) requestStart(r *request.Request) {
	m.requestsInFlight.Inc()
}

func (m *MetricsCollector) requestEnd(r *request.Request, status int, err error, elapsed time.Duration) {
	m.requestsInFlight.Dec()
	m.requestDuration.WithLabelValues(r.Method).Observe(elapsed.Seconds())
	m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
	if err != nil {
		kind := "network"
		var re *retry.Error
		if errors.As(err, &re) {
			kind = re.Kind.String()
		}
		m.errorsTotal.WithLabelValues(kind).Inc()
	}
}

func (m *MetricsCollector) recordRetry(r *request.Request) {
	m.retriesTotal.WithLabelValues(r.Method).Inc()
}

func (m *MetricsCollector) recordSlow(r *request.Request) {
	m.slowTotal.WithLabelValues(r.Method).Inc()
}
