package models

import (
	"gorm.io/gorm"
)

// ShoppingCart holds a user's cart items. One cart per user.
type ShoppingCart struct {
	gorm.Model
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"`
	User      User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CartItems []CartItem `json:"cart_items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is a single product entry inside a shopping cart
type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cart_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
