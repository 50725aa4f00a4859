package posgrest

import (
	"context"

	"github.com/mark1979smith/farmison/internal/models"
	"gorm.io/gorm"
)

// AuditStore writes gateway replies and fraud checks.
type AuditStore struct {
	responses   *repository[models.PaypalAPIResponse]
	fraudChecks *repository[models.FraudCheck]
}

func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{
		responses:   New[models.PaypalAPIResponse](db),
		fraudChecks: New[models.FraudCheck](db),
	}
}

func (s *AuditStore) RecordGatewayResponse(ctx context.Context, response *models.PaypalAPIResponse) error {
	return s.responses.Create(ctx, response)
}

func (s *AuditStore) RecordFraudCheck(ctx context.Context, check *models.FraudCheck) error {
	return s.fraudChecks.Create(ctx, check)
}
