package model

import (
	"time"

	"github.com/google/uuid"
)

// StoryModel mirrors the 'stories' table. Stories are hard deleted, either
// by their owner or by the scheduled sweeps; expires_at drives read-time
// visibility in the meantime.
type StoryModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID *uuid.UUID `gorm:"type:uuid;index"`
	CityID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type       string     `gorm:"type:varchar(20);not null"`
	Title      string     `gorm:"type:varchar(150)"`
	Image      string     `gorm:"type:varchar(500);not null"`
	Link       string     `gorm:"type:varchar(500)"`
	ProductID  *uuid.UUID `gorm:"type:uuid"`
	ServiceID  *uuid.UUID `gorm:"type:uuid"`
	ViewCount  int64      `gorm:"not null;default:0"`
	ClickCount int64      `gorm:"not null;default:0"`
	ExpiresAt  time.Time  `gorm:"not null;index"`
	CreatedAt  time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (StoryModel) TableName() string {
	return "stories"
}
