package dto

import "strings"

type WalletTopup struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
	Phone  string `json:"phone,omitempty"`
}

func (t *WalletTopup) Sanitize() {
	t.Amount = strings.TrimSpace(t.Amount)
	t.Method = strings.ToUpper(strings.TrimSpace(t.Method))
	t.Phone = strings.TrimSpace(t.Phone)
}

type WalletTransfer struct {
	ToUserID       string `json:"to_user_id"`
	Amount         string `json:"amount"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (t *WalletTransfer) Sanitize() {
	t.ToUserID = strings.TrimSpace(t.ToUserID)
	t.Amount = strings.TrimSpace(t.Amount)
	t.IdempotencyKey = strings.TrimSpace(t.IdempotencyKey)
}

type WalletSummary struct {
	WalletID string `json:"wallet_id"`
	OwnerID  string `json:"owner_id"`
	Balance  string `json:"balance"`
}
