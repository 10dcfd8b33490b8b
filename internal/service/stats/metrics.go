package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsProjectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_events_projected_total",
			Help: "Total number of delivery events applied to daily stats",
		},
		[]string{"type"},
	)

	EventsDuplicateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_events_duplicate_total",
			Help: "Total number of delivery events skipped as already processed",
		},
	)
)
