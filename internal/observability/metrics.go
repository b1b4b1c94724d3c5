package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoengine",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total engine API requests.",
		},
		[]string{"endpoint", "method", "status"},
	)
	apiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geoengine",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Engine API request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
)

// RegisterMetrics registers the API metric vectors with the default
// registry. Safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(apiRequests, apiDuration)
	})
}

// ObserveRequest records one engine API request.
func ObserveRequest(endpoint, method, status string, elapsed time.Duration) {
	apiRequests.WithLabelValues(endpoint, method, status).Inc()
	apiDuration.WithLabelValues(endpoint, method, status).Observe(elapsed.Seconds())
}
