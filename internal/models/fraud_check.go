package models

import "time"

// FraudCheck is one minFraud query. ID is the maxmindID the service returned.
type FraudCheck struct {
	ID             string    `gorm:"primaryKey;size:36"`
	OrderID        int64     `gorm:"index;not null"`
	IPAddress      string    `gorm:"size:64"`
	Score          float64   `gorm:"not null"`
	Request        string    `gorm:"type:text"`
	Results        string    `gorm:"type:text"`
	ElapsedSeconds float64   `gorm:"column:elapsed_seconds"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (FraudCheck) TableName() string {
	return "maxmind_api_queries"
}
