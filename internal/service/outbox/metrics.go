package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutboxRelayedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_relayed_total",
			Help: "Total number of outbox events relayed to kafka by result",
		},
		[]string{"result"},
	)

	OutboxPendingEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "outbox_events_pending",
			Help: "Number of outbox events not yet published",
		},
	)

	OutboxPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_events_purged_total",
			Help: "Total number of published outbox events removed after retention",
		},
	)
)
