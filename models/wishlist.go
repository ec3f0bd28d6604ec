package models

import (
	"gorm.io/gorm"
)

// Wishlist links a user to a product they saved for later
type Wishlist struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
