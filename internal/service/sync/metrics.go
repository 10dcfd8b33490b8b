package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EnvelopesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sync_envelopes_total",
		Help: "Total number of offline sync envelopes by result",
	},
	[]string{"status"},
)
