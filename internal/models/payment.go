package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string
type PaymentMethod string
type PaymentPurpose string

const (
	StatusInitiated           PaymentStatus = "INITIATED"
	StatusProcessing          PaymentStatus = "PROCESSING"
	StatusPendingConfirmation PaymentStatus = "PENDING_CONFIRMATION"
	StatusCompleted           PaymentStatus = "COMPLETED"
	StatusFailed              PaymentStatus = "FAILED"

	MethodMpesa       PaymentMethod = "MPESA"
	MethodAirtelMoney PaymentMethod = "AIRTEL_MONEY"
	MethodCard        PaymentMethod = "CARD"
	MethodWallet      PaymentMethod = "WALLET"

	PurposeBookingSettlement PaymentPurpose = "BOOKING_SETTLEMENT"
	PurposeWalletTopup       PaymentPurpose = "WALLET_TOPUP"
)

// Payment tracks one attempt to collect money, either for a booking or a
// wallet top-up. CheckoutRequestID is the gateway correlation id used to match
// asynchronous callbacks and is unique across all attempts.
type Payment struct {
	ID                string          `gorm:"primaryKey" json:"id"`
	BookingID         *string         `gorm:"index" json:"booking_id,omitempty"`
	PayerID           string          `gorm:"index;not null" json:"payer_id"`
	Purpose           PaymentPurpose  `gorm:"size:30;not null" json:"purpose"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency          string          `gorm:"size:3;not null" json:"currency"`
	Method            PaymentMethod   `gorm:"size:20;not null" json:"method"`
	Status            PaymentStatus   `gorm:"size:30;not null;index" json:"status"`
	Phone             string          `gorm:"size:20" json:"phone,omitempty"`
	CheckoutRequestID *string         `gorm:"uniqueIndex" json:"checkout_request_id,omitempty"`
	MerchantRequestID *string         `json:"merchant_request_id,omitempty"`
	CommissionAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"commission_amount"`
	PayeeAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"payee_amount"`
	ReceiptID         *string         `json:"receipt_id,omitempty"`
	FailedReason      string          `json:"failed_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (p *Payment) Validate() error {
	if !p.Method.IsValid() {
		return fmt.Errorf("invalid payment method: %s", p.Method)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if p.PayerID == "" {
		return fmt.Errorf("payer ID is required")
	}
	if p.Purpose == PurposeBookingSettlement && p.BookingID == nil {
		return fmt.Errorf("booking ID is required for booking settlement")
	}
	if !p.CommissionAmount.Add(p.PayeeAmount).Equal(p.Amount) {
		return fmt.Errorf("commission split does not sum to amount")
	}

	return nil
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodMpesa, MethodAirtelMoney, MethodCard, MethodWallet:
		return true
	default:
		return false
	}
}

// IsMobileMoney reports whether the method settles through the external push
// gateway and therefore needs the asynchronous callback leg.
func (m PaymentMethod) IsMobileMoney() bool {
	return m == MethodMpesa || m == MethodAirtelMoney
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusInitiated, StatusProcessing, StatusPendingConfirmation, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed. Duplicate
// callbacks against a terminal payment are discarded, not failed.
func (s PaymentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// SplitAmount divides a gross amount into commission and payee portions at the
// given rate. The payee portion absorbs rounding so the two always sum back to
// the gross amount.
func SplitAmount(amount, rate decimal.Decimal) (commission, payee decimal.Decimal) {
	commission = amount.Mul(rate).RoundBank(2)
	payee = amount.Sub(commission)
	return commission, payee
}
