package service

import (
	"context"

	"github.com/mark1979smith/farmison/internal/models"
	"github.com/mark1979smith/farmison/internal/nvp"
)

// Gateway sends one flat parameter set to a remote API and returns the decoded reply.
type Gateway interface {
	Call(ctx context.Context, params nvp.Request) (nvp.Response, error)
}

// OrderStore reads the amount still payable on an order.
type OrderStore interface {
	GetPayableTotal(ctx context.Context, orderID int64) (float64, error)
}

// AttemptStore keeps the history of DoExpressCheckoutPayment calls per order.
type AttemptStore interface {
	CountAttempts(ctx context.Context, orderID int64) (int64, error)
	CountSuccessfulAttempts(ctx context.Context, orderID int64) (int64, error)
	RecordAttempt(ctx context.Context, attempt *models.PaypalAttempt) error
}

type GatewayAuditStore interface {
	RecordGatewayResponse(ctx context.Context, response *models.PaypalAPIResponse) error
}

type FraudAuditStore interface {
	RecordFraudCheck(ctx context.Context, check *models.FraudCheck) error
}

// Notifier raises operator alerts. Delivery (mail, chat) happens downstream.
type Notifier interface {
	NotifyDuplicatePayment(ctx context.Context, orderID int64) error
	NotifyHighFraudScore(ctx context.Context, score float64, orderReference string, response map[string]string, nonProduction bool) error
}

type OrderNumberFormatter interface {
	Format(id int64) string
	Unformat(displayID string) (int64, error)
}

type FraudEvaluator interface {
	Evaluate(ctx context.Context, request FraudScoreRequest) (float64, error)
}
