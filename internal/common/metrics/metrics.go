// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_turns_completed_total",
			Help: "Total number of turns answered successfully per intent",
		},
		[]string{"intent"},
	)

	TurnsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_turns_failed_total",
			Help: "Total number of turns resolved through a failure path",
		},
		[]string{"intent", "error_code"},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fulfillment_turn_duration_seconds",
			Help: "Duration of turn processing in seconds",
		},
		[]string{"intent"},
	)

	TrendingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_trending_requests_total",
			Help: "Outbound TMDB trending requests by outcome",
		},
		[]string{"outcome"},
	)
)
