package models

import "time"

const (
	DuplicatePaymentTopic = "checkout.payments.duplicate"
	HighFraudScoreTopic   = "fraud.score.high"
)

// DuplicatePaymentEvent asks the office to reconcile an order that was charged more than once.
type DuplicatePaymentEvent struct {
	OrderID    int64     `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type HighFraudScoreEvent struct {
	Score          float64           `json:"score"`
	OrderReference string            `json:"order_reference"`
	Response       map[string]string `json:"response"`
	NonProduction  bool              `json:"non_production"`
	OccurredAt     time.Time         `json:"occurred_at"`
}
