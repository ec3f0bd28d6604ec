package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus reports whether status is one of the known order states
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `json:"user_id"`
	User          User           `json:"-" gorm:"foreignKey:UserID"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"total_amount"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	OrderProducts []OrderProduct `json:"order_products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderProduct is a line item. PriceAtOrderTime is a snapshot taken when the
// order is created and never updated afterwards.
type OrderProduct struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	OrderID          uint    `json:"order_id"`
	ProductID        uint    `json:"product_id"`
	Product          Product `json:"-" gorm:"foreignKey:ProductID"`
	Quantity         int     `json:"quantity"`
	PriceAtOrderTime float64 `json:"price_at_order_time"`
}
