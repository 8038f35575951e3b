// Package metrics exposes Prometheus instrumentation on a dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"backoffice/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "backoffice"

// NewRegistry returns a registry pre-loaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

type authRecorder struct {
	loginAttempts   *prometheus.CounterVec
	refreshAttempts *prometheus.CounterVec
	sessionsEvicted prometheus.Counter
	sessionsSwept   prometheus.Counter
}

// NewAuthMetrics registers the authentication counters on registry.
func NewAuthMetrics(registry prometheus.Registerer) service.AuthMetrics {
	recorder := &authRecorder{
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		refreshAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_attempts_total",
			Help:      "Token refresh attempts by outcome.",
		}, []string{"outcome"}),
		sessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Sessions deactivated by the per-principal session limit.",
		}),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_swept_total",
			Help:      "Sessions deactivated by the expiry sweeper.",
		}),
	}

	registry.MustRegister(
		recorder.loginAttempts,
		recorder.refreshAttempts,
		recorder.sessionsEvicted,
		recorder.sessionsSwept,
	)

	return recorder
}

func (r *authRecorder) LoginAttempt(outcome string) {
	r.loginAttempts.WithLabelValues(outcome).Inc()
}

func (r *authRecorder) RefreshAttempt(outcome string) {
	r.refreshAttempts.WithLabelValues(outcome).Inc()
}

func (r *authRecorder) SessionsEvicted(count int) {
	if count > 0 {
		r.sessionsEvicted.Add(float64(count))
	}
}

func (r *authRecorder) SessionsSwept(count int) {
	if count > 0 {
		r.sessionsSwept.Add(float64(count))
	}
}

// HTTPMetrics records request counts, latencies and in-flight requests.
type HTTPMetrics struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registry prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	registry.MustRegister(m.inFlight, m.requests, m.duration)

	return m
}

// Start marks a request as in flight and returns the function that completes it.
// path must be the route template, not the raw URL, to keep label cardinality bounded.
func (m *HTTPMetrics) Start() func(method, path string, status int) {
	m.inFlight.Inc()
	start := time.Now()

	return func(method, path string, status int) {
		code := strconv.Itoa(status)
		m.duration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(method, path, code).Inc()
		m.inFlight.Dec()
	}
}
