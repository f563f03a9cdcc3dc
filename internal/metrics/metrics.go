package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "staffing"

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	FormOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_operations_total",
			Help:      "Form operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	DanglingReferencesPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dangling_form_references_pruned_total",
			Help:      "Owner rows whose forms array lost ids of deleted forms during reconciliation.",
		},
	)

	AuditLogsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_logs_purged_total",
			Help:      "Audit log rows removed by the retention task.",
		},
	)
)

// ObserveForm counts a finished form operation.
func ObserveForm(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	FormOperations.WithLabelValues(operation, outcome).Inc()
}
