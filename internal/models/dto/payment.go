package dto

import (
	"strings"

	"github.com/hudumapay/settlement-service/internal/models"
)

type InitiatePayment struct {
	BookingID string `json:"booking_id"`
	Method    string `json:"method"`
	Phone     string `json:"phone,omitempty"`
}

func (p *InitiatePayment) Sanitize() {
	p.BookingID = strings.TrimSpace(p.BookingID)
	p.Method = strings.ToUpper(strings.TrimSpace(p.Method))
	p.Phone = strings.TrimSpace(p.Phone)
}

func (p *InitiatePayment) MethodEnum() models.PaymentMethod {
	return models.PaymentMethod(p.Method)
}

// PaymentHandle is the accepted-for-processing response; the caller polls the
// status endpoint or waits for a notification.
type PaymentHandle struct {
	PaymentID string `json:"payment_id"`
	Message   string `json:"message"`
}

type PaymentStatus struct {
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	ReceiptID   string `json:"receipt_id,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
}
