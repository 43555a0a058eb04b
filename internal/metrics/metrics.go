package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for upstream calls.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the collectors the site exports on /metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	apiRequests    *prometheus.CounterVec
	apiDuration    *prometheus.HistogramVec
	imageFallbacks prometheus.Counter
	sectionRenders *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "give_public_api_requests_total",
				Help: "Requests made to the public events API",
			},
			[]string{"endpoint", "outcome"},
		),
		apiDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "give_public_api_request_duration_seconds",
				Help:    "Latency of public events API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		imageFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "give_image_fallbacks_total",
				Help: "Images answered with the placeholder asset",
			},
		),
		sectionRenders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "give_section_renders_total",
				Help: "Landing page sections rendered, by variant",
			},
			[]string{"section", "variant"},
		),
	}
}

// ObserveAPI records one upstream call.
func (m *Metrics) ObserveAPI(endpoint string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.apiRequests.WithLabelValues(endpoint, outcome).Inc()
	m.apiDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

// ImageFallback records a placeholder substitution.
func (m *Metrics) ImageFallback() {
	if m == nil {
		return
	}
	m.imageFallbacks.Inc()
}

// SectionRendered records a section render such as ("testimonials", "grid").
func (m *Metrics) SectionRendered(section, variant string) {
	if m == nil {
		return
	}
	m.sectionRenders.WithLabelValues(section, variant).Inc()
}
