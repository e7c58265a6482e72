package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchingRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matching_run_duration_seconds",
			Help:    "Duration of candidate retrieval, scoring and ranking",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	MatchingCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_candidates",
			Help:    "Number of carrier candidates retrieved per matching run",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	MatchPersistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_persist_failures_total",
			Help: "Total number of ranked matches that failed to persist",
		},
	)

	MatchStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_status_transitions_total",
			Help: "Total number of match status changes",
		},
		[]string{"status"},
	)
)
