package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingAwaitingPayment BookingStatus = "AWAITING_PAYMENT"
	BookingConfirmed       BookingStatus = "CONFIRMED"
	BookingCancelled       BookingStatus = "CANCELLED"
)

// Booking is owned by the catalog service upstream; this service only reads it
// and flips AWAITING_PAYMENT to CONFIRMED when a matching payment completes.
type Booking struct {
	ID         string          `gorm:"primaryKey" json:"id"`
	CustomerID string          `gorm:"index;not null" json:"customer_id"`
	ProviderID string          `gorm:"index;not null" json:"provider_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency   string          `gorm:"size:3;not null" json:"currency"`
	Status     BookingStatus   `gorm:"size:30;not null" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
