package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Assignment outcomes recorded by Collector.RecordAssignment.
const (
	OutcomeAssigned         = "assigned"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeInvalid          = "invalid"
	OutcomeError            = "error"
)

// Collector bundles the Prometheus metrics exported by the service.
// A nil *Collector is valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	Quotes        prometheus.Counter
	QuotedCost    prometheus.Histogram
	Assignments   *prometheus.CounterVec
	Trucks        prometheus.Gauge
}

// NewCollector registers the service metrics against reg,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routesheet_http_requests_total",
			Help: "Handled HTTP requests, labeled by route and status code.",
		}, []string{"route", "code"}),
		HTTPDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "routesheet_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		Quotes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routesheet_quotes_total",
			Help: "Route sheets priced.",
		}),
		QuotedCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routesheet_quoted_cost",
			Help:    "Total cost of priced route sheets, in currency units.",
			Buckets: prometheus.ExponentialBuckets(1000, 4, 10),
		}),
		Assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routesheet_assignments_total",
			Help: "Route sheet assignment attempts, labeled by outcome.",
		}, []string{"outcome"}),
		Trucks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "routesheet_trucks",
			Help: "Trucks currently registered in the fleet.",
		}),
	}

	collectors := []prometheus.Collector{
		c.HTTPRequests, c.HTTPDurations, c.Quotes, c.QuotedCost, c.Assignments, c.Trucks,
	}
	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return c, nil
}

func (c *Collector) ObserveHTTP(route string, status int, dur time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(route).Observe(dur.Seconds())
}

func (c *Collector) RecordQuote(totalCost float64) {
	if c == nil {
		return
	}
	c.Quotes.Inc()
	c.QuotedCost.Observe(totalCost)
}

func (c *Collector) RecordAssignment(outcome string) {
	if c == nil {
		return
	}
	c.Assignments.WithLabelValues(outcome).Inc()
}

func (c *Collector) SetTrucks(n int) {
	if c == nil {
		return
	}
	c.Trucks.Set(float64(n))
}

// Handler serves the registry the collector was registered against.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
