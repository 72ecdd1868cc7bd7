package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Dataset metrics
	DatasetRecords prometheus.Gauge
	DatasetReloads *prometheus.CounterVec

	// Dashboard metrics
	NoResultsTotal prometheus.Counter
}

// New registers every collector on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DatasetRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "attractions_dataset_records",
				Help: "Number of attractions in the cached dataset snapshot",
			},
		),
		DatasetReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "attractions_dataset_reloads_total",
				Help: "Dataset loads by result",
			},
			[]string{"result"},
		),
		NoResultsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "attractions_dashboard_no_results_total",
				Help: "Map requests whose filters matched no attraction",
			},
		),
	}
}
