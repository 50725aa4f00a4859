package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaypalAttempt is one DoExpressCheckoutPayment call for an order.
// Request and Response hold JSON with credentials redacted.
type PaypalAttempt struct {
	ID            string    `gorm:"primaryKey;size:36"`
	OrderID       int64     `gorm:"index;not null"`
	InvoiceNumber string    `gorm:"size:64;uniqueIndex;not null"`
	Status        bool      `gorm:"index;not null"`
	Request       string    `gorm:"type:text"`
	Response      string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PaypalAttempt) TableName() string {
	return "transaction_responses_paypal_express"
}

func (a *PaypalAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	return
}

// PaypalAPIResponse is the audit row of a SetExpressCheckout reply.
type PaypalAPIResponse struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Method        string    `gorm:"size:64;not null"`
	Token         string    `gorm:"size:64;index"`
	Ack           string    `gorm:"size:32"`
	CorrelationID string    `gorm:"size:64"`
	ErrorCode     string    `gorm:"size:16"`
	LongMessage   string    `gorm:"size:512"`
	Response      string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PaypalAPIResponse) TableName() string {
	return "paypal_api_responses"
}

func (r *PaypalAPIResponse) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}
