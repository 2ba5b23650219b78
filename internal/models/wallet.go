package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string
type TransactionReason string
type TransactionStatus string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"

	ReasonTopup          TransactionReason = "TOPUP"
	ReasonTransferIn     TransactionReason = "TRANSFER_IN"
	ReasonTransferOut    TransactionReason = "TRANSFER_OUT"
	ReasonReward         TransactionReason = "REWARD"
	ReasonBillPayment    TransactionReason = "BILL_PAYMENT"
	ReasonRefund         TransactionReason = "REFUND"
	ReasonBookingPayout  TransactionReason = "BOOKING_PAYOUT"
	ReasonBookingPayment TransactionReason = "BOOKING_PAYMENT"

	// Every ledger entry this service writes is COMPLETED inside the same
	// transaction that moves the balance. PENDING and FAILED are reserved
	// for writers that stage entries before settling them, such as a batch
	// payout job; balance replay ignores them.
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Wallet caches the materialized balance for one owner. The append-only
// transaction log is the source of truth; the balance must always equal the
// replay of COMPLETED entries.
type Wallet struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	OwnerID   string          `gorm:"uniqueIndex;not null" json:"owner_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return
}

// WalletTransaction is one immutable ledger entry. IdempotencyKey, when set,
// is unique so a retried credit for the same logical operation inserts once.
type WalletTransaction struct {
	ID             string            `gorm:"primaryKey" json:"id"`
	WalletID       string            `gorm:"index;not null" json:"wallet_id"`
	Type           TransactionType   `gorm:"size:10;not null" json:"type"`
	Amount         decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"amount"`
	Reason         TransactionReason `gorm:"size:30;not null" json:"reason"`
	Status         TransactionStatus `gorm:"size:20;not null" json:"status"`
	IdempotencyKey *string           `gorm:"uniqueIndex" json:"idempotency_key,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (t *WalletTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}

func (t TransactionType) IsValid() bool {
	return t == TransactionCredit || t == TransactionDebit
}
