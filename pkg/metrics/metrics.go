package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubjectsTotal    *prometheus.CounterVec   // outcome: resolved, unresolved, duplicate, skipped, failed
	SearchesTotal    *prometheus.CounterVec   // result: rendered, no_results, error
	StrategyDuration *prometheus.HistogramVec // per confidence tier

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		SubjectsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resolver_subjects_total",
				Help: "Total number of roster subjects processed.",
			},
			[]string{"outcome"},
		)

		SearchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resolver_searches_total",
				Help: "Total number of search attempts.",
			},
			[]string{"result"},
		)

		StrategyDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resolver_strategy_duration_seconds",
				Help:    "Duration of one strategy attempt, search through extraction.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 15, 30},
			},
			[]string{"tier"},
		)

		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)
	})
}
