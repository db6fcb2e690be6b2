package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_cache_requests_total",
			Help: "Widget output cache lookups, by widget and result.",
		},
		[]string{"widget", "result"},
	)

	invalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_cache_invalidations_total",
			Help: "Widget output cache invalidations, by widget.",
		},
		[]string{"widget"},
	)
)

func observe(widgetID string, r Result) {
	label := "hit"
	if !r.IsHit() {
		label = r.Reason().String()
	}

	requestsTotal.WithLabelValues(widgetID, label).Inc()
}
