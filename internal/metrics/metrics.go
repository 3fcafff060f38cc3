package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Business metrics
	signalsComputed  *prometheus.CounterVec
	debatesGenerated *prometheus.CounterVec
	providerRequests *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	archiveWrites    *prometheus.CounterVec
	universeSymbols  prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Business metrics
	r.signalsComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stocklight_signals_computed_total",
			Help: "Total number of signal classifications computed",
		},
		[]string{"dimension", "status"},
	)
	r.debatesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stocklight_debates_generated_total",
			Help: "Total number of debate scripts generated",
		},
		[]string{"tone"},
	)
	r.providerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stocklight_provider_requests_total",
			Help: "Total number of upstream provider requests",
		},
		[]string{"provider", "outcome"},
	)
	r.providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stocklight_provider_duration_seconds",
			Help:    "Upstream provider request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
	r.archiveWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stocklight_archive_writes_total",
			Help: "Total number of snapshot archive writes",
		},
		[]string{"status"},
	)
	r.universeSymbols = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stocklight_universe_symbols",
			Help: "Number of tickers in the configured universe",
		},
	)

	reg.MustRegister(r.signalsComputed)
	reg.MustRegister(r.debatesGenerated)
	reg.MustRegister(r.providerRequests)
	reg.MustRegister(r.providerDuration)
	reg.MustRegister(r.archiveWrites)
	reg.MustRegister(r.universeSymbols)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordSignal records one computed dimension classification.
func (r *Registry) RecordSignal(dimension, status string) {
	r.signalsComputed.WithLabelValues(dimension, status).Inc()
}

// RecordDebate records a generated debate script by verdict tone.
func (r *Registry) RecordDebate(tone string) {
	r.debatesGenerated.WithLabelValues(tone).Inc()
}

// RecordProviderRequest records one upstream fetch and its outcome.
func (r *Registry) RecordProviderRequest(provider, outcome string, duration float64) {
	r.providerRequests.WithLabelValues(provider, outcome).Inc()
	r.providerDuration.WithLabelValues(provider).Observe(duration)
}

// RecordArchiveWrite records a snapshot archive write.
func (r *Registry) RecordArchiveWrite(status string) {
	r.archiveWrites.WithLabelValues(status).Inc()
}

// SetUniverseSize sets the configured universe size.
func (r *Registry) SetUniverseSize(size int) {
	r.universeSymbols.Set(float64(size))
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
