package model

import (
	"time"

	"github.com/google/uuid"
)

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	Country   string    `gorm:"type:varchar(100);not null"`
	Latitude  float64   `gorm:"type:decimal(10,7)"`
	Longitude float64   `gorm:"type:decimal(10,7)"`
	Timezone  string    `gorm:"type:varchar(64)"`
	Active    bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
