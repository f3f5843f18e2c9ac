// Package metrics exposes Prometheus collectors for graph builds and the
// HTTP API.
//
// [Metrics] implements both [observability.BuildHooks] and
// [observability.HTTPHooks], so registering it is all the wiring needed:
//
//	m := metrics.New(prometheus.NewRegistry())
//	observability.SetBuildHooks(m)
//	observability.SetHTTPHooks(m)
//	router.Handle("/metrics", m.Handler())
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/citymesh/citygraph/pkg/observability"
)

const namespace = "citygraph"

// Metrics holds every collector. Create it with New.
type Metrics struct {
	registry *prometheus.Registry

	FeedRecords     *prometheus.CounterVec
	FeedDuration    *prometheus.HistogramVec
	RecordsSkipped  *prometheus.CounterVec
	Vertices        prometheus.Gauge
	Edges           prometheus.Gauge
	BuildsTotal     *prometheus.CounterVec
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

var (
	_ observability.BuildHooks = (*Metrics)(nil)
	_ observability.HTTPHooks  = (*Metrics)(nil)
)

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,

		FeedRecords: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_records_total",
				Help:      "Records applied from each feed",
			},
			[]string{"feed"},
		),
		FeedDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "feed_duration_seconds",
				Help:      "Time spent applying each feed",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"feed"},
		),
		RecordsSkipped: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_skipped_total",
				Help:      "Records dropped while building the graph",
			},
			[]string{"feed"},
		),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertices",
			Help:      "Neighborhoods in the loaded graph",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Streets in the loaded graph",
		}),
		BuildsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "builds_total",
				Help:      "Graph builds by outcome",
			},
			[]string{"result"},
		),
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) OnFeedStart(context.Context, string, string) {}

func (m *Metrics) OnRecordSkipped(_ context.Context, feed string, _ int, _ string) {
	m.RecordsSkipped.WithLabelValues(feed).Inc()
}

func (m *Metrics) OnFeedComplete(_ context.Context, feed, _ string, records int, duration time.Duration, _ error) {
	m.FeedRecords.WithLabelValues(feed).Add(float64(records))
	m.FeedDuration.WithLabelValues(feed).Observe(duration.Seconds())
}

func (m *Metrics) OnBuildComplete(_ context.Context, vertices, edges int, _ time.Duration, err error) {
	if err != nil {
		m.BuildsTotal.WithLabelValues("error").Inc()
		return
	}
	m.BuildsTotal.WithLabelValues("ok").Inc()
	m.Vertices.Set(float64(vertices))
	m.Edges.Set(float64(edges))
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
}
