package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Rows are soft deleted through
// the status column so reviews and favorites keep valid references.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID  *uuid.UUID `gorm:"type:uuid;index"`
	CityID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(150);not null"`
	Description string     `gorm:"type:text"`
	Category    string     `gorm:"type:varchar(60);index"`
	Price       float64    `gorm:"type:decimal(12,2);not null"`
	Condition   string     `gorm:"type:varchar(20)"`
	Images      []string   `gorm:"serializer:json;type:jsonb"`
	Stock       int        `gorm:"not null;default:0"`
	Status      string     `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	ExpiresAt   *time.Time `gorm:"index"`
	ViewCount   int64      `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
