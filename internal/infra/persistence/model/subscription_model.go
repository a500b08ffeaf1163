package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Plan          string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	Amount        float64   `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null;index"`
	AutoRenew     bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Payments []PaymentModel `gorm:"foreignKey:SubscriptionID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
