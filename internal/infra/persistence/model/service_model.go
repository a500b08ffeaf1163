package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID   *uuid.UUID `gorm:"type:uuid;index"`
	CityID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(150);not null"`
	Description  string     `gorm:"type:text"`
	Category     string     `gorm:"type:varchar(60);index"`
	PriceType    string     `gorm:"type:varchar(20)"`
	Price        float64    `gorm:"type:decimal(12,2)"`
	PriceUnit    string     `gorm:"type:varchar(30)"`
	Images       []string   `gorm:"serializer:json;type:jsonb"`
	CoverageArea string     `gorm:"type:varchar(255)"`
	Status       string     `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	ViewCount    int64      `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
