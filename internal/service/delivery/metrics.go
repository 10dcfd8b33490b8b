package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ActionsLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_actions_logged_total",
		Help: "Total number of delivery actions committed, by action type",
	},
	[]string{"type"},
)
