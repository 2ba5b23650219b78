package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/gateway"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/hudumapay/settlement-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SettlementStore is the durable side of the engine: payment records plus the
// atomic finalize primitives. Implemented by posgrest.SettlementStore.
type SettlementStore interface {
	PaymentByID(ctx context.Context, id string) (*models.Payment, error)
	PaymentByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.Payment, error)
	Booking(ctx context.Context, id string) (*models.Booking, error)
	CreateAttempt(ctx context.Context, p *models.Payment) (*models.Payment, error)
	MarkProcessing(ctx context.Context, paymentID, merchantRequestID, checkoutRequestID string) error
	MarkPendingConfirmation(ctx context.Context, paymentID string) error
	MarkFailed(ctx context.Context, paymentID, reason string) (bool, error)
	CompleteSettlement(ctx context.Context, paymentID, receiptID string, completedAt time.Time) (bool, error)
	SettleFromWallet(ctx context.Context, paymentID string, completedAt time.Time) error
	StalePayments(ctx context.Context, statuses []models.PaymentStatus, updatedBefore time.Time) ([]models.Payment, error)
}

// GatewayAPI is the slice of the gateway client the engine calls.
type GatewayAPI interface {
	InitiatePush(ctx context.Context, phone string, amount decimal.Decimal, reference, description string) (*gateway.PushResult, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (*gateway.StatusResult, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// SettlementEngine is the only component allowed to transition a payment's
// status, confirm a booking, or trigger a wallet credit for a settlement.
type SettlementEngine struct {
	Store          SettlementStore
	Gateway        GatewayAPI
	Publisher      Publisher
	CommissionRate decimal.Decimal
	Currency       string
}

func NewSettlementEngine(store SettlementStore, gw GatewayAPI, publisher Publisher, commissionRate decimal.Decimal, currency string) *SettlementEngine {
	return &SettlementEngine{
		Store:          store,
		Gateway:        gw,
		Publisher:      publisher,
		CommissionRate: commissionRate,
		Currency:       currency,
	}
}

// Initiate starts a settlement attempt for a booking. It never blocks on
// gateway completion: for mobile money the returned handle means the push was
// dispatched, not that money moved.
func (e *SettlementEngine) Initiate(ctx context.Context, payerID string, req *dto.InitiatePayment) (*dto.PaymentHandle, error) {
	req.Sanitize()
	method := req.MethodEnum()
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: unsupported payment method %q", apperr.ErrValidation, req.Method)
	}
	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: booking_id is required", apperr.ErrValidation)
	}
	if method == models.MethodCard {
		return nil, fmt.Errorf("%w: card payments are not enabled", apperr.ErrValidation)
	}
	if method.IsMobileMoney() && req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required for mobile money", apperr.ErrValidation)
	}

	booking, err := e.Store.Booking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != payerID {
		return nil, fmt.Errorf("%w: booking does not belong to caller", apperr.ErrValidation)
	}
	if !booking.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: booking amount must be positive", apperr.ErrValidation)
	}

	commission, payee := models.SplitAmount(booking.Amount, e.CommissionRate)
	bookingID := booking.ID
	payment := &models.Payment{
		BookingID:        &bookingID,
		PayerID:          payerID,
		Purpose:          models.PurposeBookingSettlement,
		Amount:           booking.Amount,
		Currency:         booking.Currency,
		Method:           method,
		Status:           models.StatusInitiated,
		Phone:            req.Phone,
		CommissionAmount: commission,
		PayeeAmount:      payee,
	}
	if err := payment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	payment, err = e.Store.CreateAttempt(ctx, payment)
	if err != nil {
		return nil, err
	}

	if method == models.MethodWallet {
		return e.settleFromWallet(ctx, payment, booking)
	}

	return e.dispatchPush(ctx, payment, "Booking "+booking.ID)
}

// InitiateTopup starts a mobile money push that credits the caller's own
// wallet on completion. No commission applies to top-ups.
func (e *SettlementEngine) InitiateTopup(ctx context.Context, payerID string, req *dto.WalletTopup) (*dto.PaymentHandle, error) {
	req.Sanitize()
	method := models.PaymentMethod(req.Method)
	if !method.IsMobileMoney() {
		return nil, fmt.Errorf("%w: top-ups require a mobile money method", apperr.ErrValidation)
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required for mobile money", apperr.ErrValidation)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive decimal", apperr.ErrValidation)
	}

	payment := &models.Payment{
		PayerID:          payerID,
		Purpose:          models.PurposeWalletTopup,
		Amount:           amount,
		Currency:         e.Currency,
		Method:           method,
		Status:           models.StatusInitiated,
		Phone:            req.Phone,
		CommissionAmount: decimal.Zero,
		PayeeAmount:      amount,
	}

	payment, err = e.Store.CreateAttempt(ctx, payment)
	if err != nil {
		return nil, err
	}

	return e.dispatchPush(ctx, payment, "Wallet top-up")
}

// dispatchPush sends the gateway push for an INITIATED payment. A transport
// failure leaves the record in INITIATED so the caller can retry; an explicit
// rejection is terminal.
func (e *SettlementEngine) dispatchPush(ctx context.Context, payment *models.Payment, description string) (*dto.PaymentHandle, error) {
	log := logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"method":     payment.Method,
	})

	push, err := e.Gateway.InitiatePush(ctx, payment.Phone, payment.Amount, payment.ID, description)
	if err != nil {
		if errors.Is(err, apperr.ErrGatewayUnavailable) {
			log.WithError(err).Warn("gateway unreachable, payment left in INITIATED for retry")
			return nil, err
		}
		log.WithError(err).Error("gateway rejected push request")
		if _, failErr := e.Store.MarkFailed(ctx, payment.ID, err.Error()); failErr != nil {
			log.WithError(failErr).Error("failed to record gateway rejection")
		}
		return nil, err
	}

	if err := e.Store.MarkProcessing(ctx, payment.ID, push.MerchantRequestID, push.CheckoutRequestID); err != nil {
		return nil, err
	}

	log.WithField("checkout_request_id", push.CheckoutRequestID).Info("push dispatched")

	message := push.CustomerMessage
	if message == "" {
		message = "Payment request sent. Enter your PIN on your phone to complete."
	}
	return &dto.PaymentHandle{PaymentID: payment.ID, Message: message}, nil
}

// settleFromWallet is the same-transaction path: no callback leg, the booking
// confirms immediately or the whole settlement rolls back.
func (e *SettlementEngine) settleFromWallet(ctx context.Context, payment *models.Payment, booking *models.Booking) (*dto.PaymentHandle, error) {
	err := e.Store.SettleFromWallet(ctx, payment.ID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperr.ErrInsufficientFunds) {
			if _, failErr := e.Store.MarkFailed(ctx, payment.ID, "insufficient wallet balance"); failErr != nil {
				logrus.WithError(failErr).WithField("payment_id", payment.ID).
					Error("failed to record insufficient funds failure")
			}
		}
		return nil, err
	}

	e.notify(ctx, models.NotificationEvent{
		UserID:    payment.PayerID,
		Template:  "booking_confirmed",
		Title:     "Booking confirmed",
		Body:      fmt.Sprintf("Your wallet was charged %s %s and your booking is confirmed.", payment.Currency, payment.Amount),
		PaymentID: payment.ID,
		BookingID: booking.ID,
	})
	e.notify(ctx, models.NotificationEvent{
		UserID:    booking.ProviderID,
		Template:  "booking_paid",
		Title:     "Booking paid",
		Body:      fmt.Sprintf("%s %s has been credited to your wallet.", payment.Currency, payment.PayeeAmount),
		PaymentID: payment.ID,
		BookingID: booking.ID,
	})

	return &dto.PaymentHandle{PaymentID: payment.ID, Message: "Payment completed from wallet."}, nil
}

// Finalize applies the outcome reported for a correlation id. It is the dedup
// boundary for at-least-once delivery: unknown ids are discarded, terminal
// payments are no-ops, and the success effects apply exactly once.
func (e *SettlementEngine) Finalize(ctx context.Context, result *gateway.CallbackResult) error {
	log := logrus.WithField("checkout_request_id", result.CheckoutRequestID)

	payment, err := e.Store.PaymentByCheckoutID(ctx, result.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn("callback for unknown correlation id discarded")
			return nil
		}
		return err
	}

	log = log.WithField("payment_id", payment.ID)

	if payment.Status.IsTerminal() {
		log.Debug("duplicate callback for terminal payment discarded")
		return nil
	}

	if !result.Succeeded {
		return e.finalizeFailure(ctx, payment, result.FailureReason)
	}

	if result.Amount != nil && !result.Amount.Equal(payment.Amount) {
		return e.finalizeAmountMismatch(ctx, payment, result)
	}

	applied, err := e.Store.CompleteSettlement(ctx, payment.ID, result.ReceiptID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("completing settlement for payment %s: %w", payment.ID, err)
	}
	if !applied {
		log.Debug("settlement already applied by concurrent finalize")
		return nil
	}

	log.WithField("receipt_id", result.ReceiptID).Info("payment completed")
	e.notifyCompleted(ctx, payment)
	return nil
}

func (e *SettlementEngine) finalizeFailure(ctx context.Context, payment *models.Payment, reason string) error {
	if reason == "" {
		reason = "payment failed at gateway"
	}
	applied, err := e.Store.MarkFailed(ctx, payment.ID, reason)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"reason":     reason,
	}).Info("payment failed")

	e.notify(ctx, models.NotificationEvent{
		UserID:    payment.PayerID,
		Template:  "payment_failed",
		Title:     "Payment failed",
		Body:      reason + ". You can try again.",
		PaymentID: payment.ID,
	})
	return nil
}

// finalizeAmountMismatch handles a success report whose amount disagrees with
// the record: the payment fails and a fraud signal is emitted, never trusted.
func (e *SettlementEngine) finalizeAmountMismatch(ctx context.Context, payment *models.Payment, result *gateway.CallbackResult) error {
	mismatch := fmt.Errorf("%w: gateway reported success with amount %s but payment records %s",
		apperr.ErrAmountMismatch, result.Amount, payment.Amount)
	detail := mismatch.Error()

	logrus.WithFields(logrus.Fields{
		"payment_id":          payment.ID,
		"checkout_request_id": result.CheckoutRequestID,
		"fraud_signal":        true,
	}).Error(detail)

	e.publish(ctx, models.AnomalyTopic, models.AnomalyEvent{
		PaymentID:         payment.ID,
		CheckoutRequestID: result.CheckoutRequestID,
		ExpectedAmount:    payment.Amount.String(),
		ReportedAmount:    result.Amount.String(),
		Detail:            detail,
		CreatedAt:         time.Now().UTC(),
	})

	_, err := e.Store.MarkFailed(ctx, payment.ID, detail)
	return err
}

// Status returns the caller-facing view of one payment. Callers only see
// their own payments.
func (e *SettlementEngine) Status(ctx context.Context, callerID, paymentID string) (*dto.PaymentStatus, error) {
	payment, err := e.Store.PaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.PayerID != callerID {
		return nil, apperr.ErrNotFound
	}

	status := &dto.PaymentStatus{
		Status: string(payment.Status),
		Amount: payment.Amount.StringFixed(2),
		Method: string(payment.Method),
	}
	if payment.ReceiptID != nil {
		status.ReceiptID = *payment.ReceiptID
	}
	if payment.CompletedAt != nil {
		status.CompletedAt = payment.CompletedAt.UTC().Format(time.RFC3339)
	}
	return status, nil
}

// RecoverStale is the lost-webhook fallback: payments in flight longer than
// the wait window are resolved through a gateway status query fed into the
// same finalize path. Safe to run concurrently with real callbacks.
func (e *SettlementEngine) RecoverStale(ctx context.Context, window, expiry time.Duration) error {
	cutoff := time.Now().Add(-window)
	stale, err := e.Store.StalePayments(ctx,
		[]models.PaymentStatus{models.StatusProcessing, models.StatusPendingConfirmation}, cutoff)
	if err != nil {
		return err
	}

	for _, payment := range stale {
		if payment.CheckoutRequestID == nil {
			continue
		}
		log := logrus.WithFields(logrus.Fields{
			"payment_id":          payment.ID,
			"checkout_request_id": *payment.CheckoutRequestID,
		})

		status, err := e.Gateway.QueryStatus(ctx, *payment.CheckoutRequestID)
		if err != nil {
			log.WithError(err).Warn("status query failed, will retry next sweep")
			continue
		}

		if status.Pending {
			if time.Since(payment.CreatedAt) > expiry {
				if err := e.finalizeFailure(ctx, &payment, "gateway confirmation timed out"); err != nil {
					log.WithError(err).Error("failed to expire stale payment")
				}
				continue
			}
			if err := e.Store.MarkPendingConfirmation(ctx, payment.ID); err != nil {
				log.WithError(err).Error("failed to flag pending confirmation")
			}
			continue
		}

		result := &gateway.CallbackResult{
			CheckoutRequestID: *payment.CheckoutRequestID,
			Succeeded:         status.Succeeded,
			FailureReason:     status.FailureReason,
		}
		if err := e.Finalize(ctx, result); err != nil {
			log.WithError(err).Error("failed to finalize from status query")
		}
	}

	return nil
}

func (e *SettlementEngine) notifyCompleted(ctx context.Context, payment *models.Payment) {
	switch payment.Purpose {
	case models.PurposeBookingSettlement:
		e.notify(ctx, models.NotificationEvent{
			UserID:    payment.PayerID,
			Template:  "booking_confirmed",
			Title:     "Payment received",
			Body:      fmt.Sprintf("We received %s %s. Your booking is confirmed.", payment.Currency, payment.Amount),
			PaymentID: payment.ID,
			BookingID: derefString(payment.BookingID),
		})
	case models.PurposeWalletTopup:
		e.notify(ctx, models.NotificationEvent{
			UserID:    payment.PayerID,
			Template:  "wallet_topup",
			Title:     "Wallet topped up",
			Body:      fmt.Sprintf("%s %s has been added to your wallet.", payment.Currency, payment.Amount),
			PaymentID: payment.ID,
		})
	}
}

// notify is fire-and-forget: the notifier owns delivery, and a publish error
// never fails a settlement.
func (e *SettlementEngine) notify(ctx context.Context, event models.NotificationEvent) {
	event.CreatedAt = time.Now().UTC()
	e.publish(ctx, models.NotificationTopic, event)
}

func (e *SettlementEngine) publish(ctx context.Context, topic string, message interface{}) {
	if err := e.Publisher.Publish(ctx, topic, message); err != nil {
		logrus.WithError(err).WithField("topic", topic).Error("failed to publish event")
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
