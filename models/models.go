package models

import (
	"gorm.io/gorm"
)

// Role values accepted by the authorization guard
const (
	RoleAdmin    = "ADMIN"
	RoleProvider = "PROVIDER"
	RoleUser     = "USER"
)

// ValidRole reports whether role belongs to the closed role set
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleProvider, RoleUser:
		return true
	}
	return false
}

// User represents an account in the system
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null" json:"role"`
	GoogleID string `gorm:"default:null" json:"-"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	Image    string    `json:"image,omitempty"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

// Product represents an item in the catalog
type Product struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	Quantity    int      `json:"quantity"`
	CategoryID  uint     `json:"category_id"`
	Category    Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Image       string   `json:"image,omitempty"`
}

// Comment represents a user comment on a product
type Comment struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"-" gorm:"foreignKey:ProductID"`
	Comment   string  `json:"comment"`
}

// Message status constants
const (
	MessageStatusPending  = "PENDING"
	MessageStatusApproved = "APPROVED"
)

// Message represents a contact-form message
type Message struct {
	gorm.Model
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Status      string `json:"status"`
}
