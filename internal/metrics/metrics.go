// Package metrics exposes the feed's prometheus counters.
package metrics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a set of counters on its own registry. It implements
// feed.Observer.
type Metrics struct {
	registry *prometheus.Registry

	pagesLoaded *prometheus.CounterVec
	presses     *prometheus.CounterVec
	requests    *prometheus.CounterVec
	streamsOpen prometheus.Gauge
}

// New registers the feed counters and the Go runtime collectors on a fresh
// registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pagesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explore",
			Name:      "story_pages_loaded_total",
			Help:      "Pages of stories materialized, labeled by whether the loader became exhausted.",
		}, []string{"exhausted"}),
		presses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explore",
			Name:      "presses_total",
			Help:      "Button presses dispatched, by target.",
		}, []string{"target"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "explore",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		streamsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "explore",
			Name:      "story_streams_open",
			Help:      "Story stream websocket connections currently open.",
		}),
	}

	m.registry.MustRegister(
		m.pagesLoaded,
		m.presses,
		m.requests,
		m.streamsOpen,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// PageLoaded counts one materialized page.
func (m *Metrics) PageLoaded(exhausted bool) {
	m.pagesLoaded.WithLabelValues(strconv.FormatBool(exhausted)).Inc()
}

// Pressed counts one dispatched action. Menu actions are grouped under
// "menu" to keep label cardinality bounded.
func (m *Metrics) Pressed(action string) {
	target, _, _ := strings.Cut(action, ":")
	m.presses.WithLabelValues(target).Inc()
}

// Request counts one served HTTP request.
func (m *Metrics) Request(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// StreamOpened and StreamClosed track open websocket streams.
func (m *Metrics) StreamOpened() { m.streamsOpen.Inc() }

func (m *Metrics) StreamClosed() { m.streamsOpen.Dec() }

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
