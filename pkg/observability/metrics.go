package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service-level counters. Registered once on the default registry.
var (
	// LoansCreated counts loans originated, labelled by currency.
	LoansCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "loans_created_total",
		Help:      "Number of loans created.",
	}, []string{"currency"})

	// PaymentsApplied counts repayments allocated, labelled by the loan
	// status after allocation.
	PaymentsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "payments_applied_total",
		Help:      "Number of repayments applied to loans.",
	}, []string{"loan_status"})

	// InstallmentsRepaid counts installments settled in full.
	InstallmentsRepaid = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lending",
		Name:      "installments_repaid_total",
		Help:      "Number of installments fully repaid.",
	})
)

// MetricsHandler returns the HTTP handler serving the /metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
