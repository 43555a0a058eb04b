package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAPI("events", time.Now(), nil)
	m.ObserveAPI("events", time.Now(), errors.New("boom"))
	m.ObserveAPI("events", time.Now(), errors.New("boom"))
	m.ImageFallback()
	m.SectionRendered("testimonials", "grid")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("events", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("events", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.imageFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sectionRenders.WithLabelValues("testimonials", "grid")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAPI("events", time.Now(), nil)
		m.ImageFallback()
		m.SectionRendered("events", "cards")
	})
}
