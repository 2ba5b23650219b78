package models

import "time"

const (
	NotificationTopic = "notifications.requested"
	AnomalyTopic      = "payments.anomaly"
	PaymentsDLQTopic  = "payments.dlq"
)

// NotificationEvent is the fire-and-forget contract with the notifier service.
type NotificationEvent struct {
	UserID    string    `json:"user_id"`
	Template  string    `json:"template"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	PaymentID string    `json:"payment_id,omitempty"`
	BookingID string    `json:"booking_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AnomalyEvent flags a callback whose reported amount disagrees with the
// recorded payment. These are fraud signals reviewed out of band.
type AnomalyEvent struct {
	PaymentID         string    `json:"payment_id"`
	CheckoutRequestID string    `json:"checkout_request_id"`
	ExpectedAmount    string    `json:"expected_amount"`
	ReportedAmount    string    `json:"reported_amount"`
	Detail            string    `json:"detail"`
	CreatedAt         time.Time `json:"created_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
