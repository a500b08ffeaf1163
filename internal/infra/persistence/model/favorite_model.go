package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The same per-subject unique
// index scheme as reviews keeps one favorite per (user, subject) pair.
type FavoriteModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_favorites_user_business;uniqueIndex:ux_favorites_user_product;uniqueIndex:ux_favorites_user_service"`
	BusinessID *uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_favorites_user_business"`
	ProductID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_favorites_user_product"`
	ServiceID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_favorites_user_service"`
	CreatedAt  time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
	Product  *ProductModel  `gorm:"foreignKey:ProductID"`
	Service  *ServiceModel  `gorm:"foreignKey:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
