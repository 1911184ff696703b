// Package metrics exposes Prometheus collectors for the site. A nil *Metrics
// is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gradientspace"

// Metrics holds the site's collectors and the registry they live in
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inquiries *prometheus.CounterVec
	packages  *prometheus.CounterVec
	tabs      *prometheus.CounterVec
	reveals   *prometheus.CounterVec
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		inquiries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inquiries_total",
			Help:      "Contact form submissions by result.",
		}, []string{"result"}),
		packages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inquiries_by_package_total",
			Help:      "Accepted contact form submissions by selected package.",
		}, []string{"package"}),
		tabs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tab_selections_total",
			Help:      "Tab switches by destination tab.",
		}, []string{"tab"}),
		reveals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_reveals_total",
			Help:      "Fade-in sections revealed, by section.",
		}, []string{"section"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.inquiries, m.packages, m.tabs, m.reveals,
	)
	return m
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterSessions exports the live page session count
func (m *Metrics) RegisterSessions(count func() int) {
	if m == nil {
		return
	}
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "page_sessions",
		Help:      "Live page sessions.",
	}, func() float64 { return float64(count()) }))
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// InquiryAccepted records a delivered contact form
func (m *Metrics) InquiryAccepted(pkg string) {
	if m == nil {
		return
	}
	m.inquiries.WithLabelValues("accepted").Inc()
	m.packages.WithLabelValues(pkg).Inc()
}

// InquiryFailed records a contact form no sink could take
func (m *Metrics) InquiryFailed() {
	if m == nil {
		return
	}
	m.inquiries.WithLabelValues("failed").Inc()
}

// TabSelected records a tab switch
func (m *Metrics) TabSelected(tab string) {
	if m == nil {
		return
	}
	m.tabs.WithLabelValues(tab).Inc()
}

// SectionRevealed records a fade-in section firing
func (m *Metrics) SectionRevealed(section string) {
	if m == nil {
		return
	}
	m.reveals.WithLabelValues(section).Inc()
}
