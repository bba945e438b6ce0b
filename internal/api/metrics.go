package api

import (
	"time"

	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	solves   *prometheus.CounterVec
	rejected prometheus.Counter
	duration prometheus.Histogram
	length   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tailsum_solve_total",
			Help: "Solve requests by outcome (found, not_found).",
		}, []string{"outcome"}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "tailsum_solve_rejected_total",
			Help: "Solve requests rejected as malformed.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tailsum_solve_duration_seconds",
			Help:    "Time spent in Solve.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
		length: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tailsum_solution_length",
			Help:    "Length of found sequences.",
			Buckets: prometheus.LinearBuckets(3, 3, 18), // 3 to 54
		}),
	}
}

func (m *metrics) observe(res sequence.Result, elapsed time.Duration) {
	m.duration.Observe(elapsed.Seconds())
	if !res.Found {
		m.solves.WithLabelValues("not_found").Inc()
		return
	}
	m.solves.WithLabelValues("found").Inc()
	m.length.Observe(float64(res.TotalLength))
}
