package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "form_relay"

var (
	// storeCallsTotal counts sheet store calls by operation and outcome.
	storeCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "calls_total",
			Help:      "Total number of sheet store calls.",
		},
		[]string{"driver", "op", "outcome"},
	)

	// deliveriesTotal counts email sends by outcome.
	deliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "email",
			Name:      "deliveries_total",
			Help:      "Total number of email delivery attempts.",
		},
		[]string{"outcome"},
	)

	// flowsTotal counts finished request flows by kind and result.
	flowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "flow",
			Name:      "completed_total",
			Help:      "Total number of submission, contact and subscription flows by result.",
		},
		[]string{"flow", "result"},
	)
)

// ObserveStoreCall records one store call. outcome is "ok" or an error kind.
func ObserveStoreCall(driver, op, outcome string) {
	storeCallsTotal.WithLabelValues(driver, op, outcome).Inc()
}

// ObserveDelivery records one email send attempt.
func ObserveDelivery(outcome string) {
	deliveriesTotal.WithLabelValues(outcome).Inc()
}

// ObserveFlow records the end of a request flow. result is "ok" or a failure reason.
func ObserveFlow(flow, result string) {
	flowsTotal.WithLabelValues(flow, result).Inc()
}
