package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. The subscription columns are
// a denormalized snapshot of the current subscription so listing queries can
// sort by tier without joining the subscriptions table.
type BusinessModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;unique"`
	Slug                  string    `gorm:"type:varchar(120);not null;unique"`
	Name                  string    `gorm:"type:varchar(100);not null"`
	Description           string    `gorm:"type:text"`
	Category              string    `gorm:"type:varchar(60);index"`
	Logo                  string    `gorm:"type:varchar(500)"`
	CoverImage            string    `gorm:"type:varchar(500)"`
	Phone                 string    `gorm:"type:varchar(30)"`
	WhatsApp              string    `gorm:"type:varchar(30)"`
	Email                 string    `gorm:"type:varchar(255)"`
	Website               string    `gorm:"type:varchar(500)"`
	Address               string    `gorm:"type:varchar(255)"`
	Latitude              float64   `gorm:"type:decimal(10,7)"`
	Longitude             float64   `gorm:"type:decimal(10,7)"`
	SubscriptionPlan      string    `gorm:"type:varchar(20);not null;default:'FREE';index"`
	SubscriptionStatus    string    `gorm:"type:varchar(20)"`
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
	Verified              bool      `gorm:"not null;default:false"`
	ViewCount             int64     `gorm:"not null;default:0"`
	AccountStatus         string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CityID                uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
