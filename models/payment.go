package models

import (
	"time"
)

// Payment status constants. A payment starts INITIATED and ends in exactly one
// of SUCCESS or FAILED; it never leaves a terminal state.
const (
	PaymentStatusInitiated = "INITIATED"
	PaymentStatusSuccess   = "SUCCESS"
	PaymentStatusFailed    = "FAILED"
)

type Payment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `json:"order_id"`
	Order      Order     `json:"-" gorm:"foreignKey:OrderID"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	MerchantID string    `json:"merchant_id"`
	Authority  string    `gorm:"index" json:"authority"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
