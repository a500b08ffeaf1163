package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Exactly one subject column is
// non-null per row; the per-subject unique indexes enforce one review per
// (user, subject) pair. PostgreSQL treats NULLs as distinct, so rows with a
// different subject type never collide.
type ReviewModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_reviews_user_business;uniqueIndex:ux_reviews_user_product;uniqueIndex:ux_reviews_user_service"`
	BusinessID *uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_reviews_user_business"`
	ProductID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_reviews_user_product"`
	ServiceID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_reviews_user_service"`
	Rating     int        `gorm:"not null"`
	Comment    string     `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
