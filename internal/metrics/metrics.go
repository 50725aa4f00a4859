package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GatewayCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paypal_gateway_calls_total",
			Help: "PayPal NVP calls by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	AuthorizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paypal_authorizations_total",
			Help: "Express Checkout authorizations by status",
		},
		[]string{"status"},
	)

	DuplicatePaymentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "paypal_duplicate_payments_total",
			Help: "Successful authorizations for orders that were already paid",
		},
	)

	FraudScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fraud_scores",
			Help:    "Distribution of minFraud risk scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	FraudHighRiskTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fraud_high_risk_total",
			Help: "Orders whose risk score reached the alert threshold",
		},
	)

	FraudQueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fraud_query_duration_seconds",
			Help:    "Round trip latency of minFraud queries",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		GatewayCallsTotal,
		AuthorizationsTotal,
		DuplicatePaymentsTotal,
		FraudScores,
		FraudHighRiskTotal,
		FraudQueryDuration,
	)
}
