package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. external_id carries the
// gateway's payment reference and is how webhook notifications find the row.
type PaymentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount         float64   `gorm:"type:decimal(12,2);not null"`
	PaymentMethod  string    `gorm:"type:varchar(20);not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	ExternalID     string    `gorm:"type:varchar(100);index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
