// Package metrics records render counts and durations per template.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry
	rendered *prometheus.CounterVec
	failed   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the collectors on a private registry so several builds in
// one process do not collide on the default one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagesmith",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered successfully, by template.",
		}, []string{"template"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagesmith",
			Name:      "render_errors_total",
			Help:      "Records that failed to render, by template.",
		}, []string{"template"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pagesmith",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one record, by template.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"template"}),
	}
	m.registry.MustRegister(m.rendered, m.failed, m.duration)
	return m
}

func (m *Metrics) ObserveRender(template string, elapsed time.Duration, err error) {
	m.duration.WithLabelValues(template).Observe(elapsed.Seconds())
	if err != nil {
		m.failed.WithLabelValues(template).Inc()
		return
	}
	m.rendered.WithLabelValues(template).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type Recorder interface {
	ObserveRender(template string, elapsed time.Duration, err error)
}

type nop struct{}

func (nop) ObserveRender(string, time.Duration, error) {}

// Nop discards observations.
func Nop() Recorder {
	return nop{}
}
