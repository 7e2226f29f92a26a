// Package metrics exposes Prometheus collectors for calls to the activities API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "activity_portal"

// Result labels for upstream requests.
const (
	ResultOK        = "ok"
	ResultRejected  = "rejected"
	ResultTransport = "transport_error"
)

// Upstream records activities API calls.
type Upstream struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewUpstream registers the collectors on a dedicated registry.
func NewUpstream() *Upstream {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Upstream{
		registry: reg,
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of activities API requests",
			},
			[]string{"operation", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Activities API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// Observe records one finished request. A nil Upstream is a no-op.
func (u *Upstream) Observe(operation, result string, elapsed time.Duration) {
	if u == nil {
		return
	}
	u.total.WithLabelValues(operation, result).Inc()
	u.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Requests returns the counter for operation/result.
func (u *Upstream) Requests(operation, result string) prometheus.Counter {
	return u.total.WithLabelValues(operation, result)
}

// Handler serves the registry in the Prometheus text format.
func (u *Upstream) Handler() http.Handler {
	return promhttp.HandlerFor(u.registry, promhttp.HandlerOpts{})
}
