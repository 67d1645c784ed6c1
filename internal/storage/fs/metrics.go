package fs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qaboard_store_saves_total",
			Help: "Board file saves by result",
		},
		[]string{"result"},
	)

	corruptLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qaboard_store_corrupt_loads_total",
			Help: "Loads that found an unreadable or unparsable board file",
		},
	)
)
