package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AllocationSavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "debatab_allocation_saves_total",
	Help: "The number of adjudicator allocation saves by editor",
}, []string{"editor"})

var ConflictRowsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "debatab_conflict_rows_saved_total",
	Help: "The number of conflict rows created or updated by relation",
}, []string{"relation"})

var ConflictRowsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "debatab_conflict_rows_deleted_total",
	Help: "The number of conflict rows deleted by relation",
}, []string{"relation"})

var AllocationSocketGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "debatab_allocation_socket_connections",
	Help: "Current number of open allocation websocket connections",
})

var ActionLogPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "debatab_action_log_publish_errors_total",
	Help: "Number of action log entries that failed to reach Kafka",
})
