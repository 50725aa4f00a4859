package posgrest

import (
	"context"

	"github.com/mark1979smith/farmison/internal/models"
	"gorm.io/gorm"
)

// AttemptStore keeps every DoExpressCheckoutPayment call made for an order.
type AttemptStore struct {
	attempts *repository[models.PaypalAttempt]
}

func NewAttemptStore(db *gorm.DB) *AttemptStore {
	return &AttemptStore{attempts: New[models.PaypalAttempt](db)}
}

func (s *AttemptStore) CountAttempts(ctx context.Context, orderID int64) (int64, error) {
	return s.attempts.CountBy(ctx, "order_id = ?", orderID)
}

func (s *AttemptStore) CountSuccessfulAttempts(ctx context.Context, orderID int64) (int64, error) {
	return s.attempts.CountBy(ctx, "order_id = ? AND status = ?", orderID, true)
}

func (s *AttemptStore) RecordAttempt(ctx context.Context, attempt *models.PaypalAttempt) error {
	return s.attempts.Create(ctx, attempt)
}
