package posgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettlementStore is the durable record store for payments plus the atomic
// multi-effect primitives the engine needs: attempt creation under a booking
// row lock, compare-and-set status moves, and the all-or-nothing finalize.
type SettlementStore struct {
	db       *gorm.DB
	payments *repository[models.Payment]
	bookings *repository[models.Booking]
}

func NewSettlementStore(db *gorm.DB) *SettlementStore {
	return &SettlementStore{
		db:       db,
		payments: New[models.Payment](db),
		bookings: New[models.Booking](db),
	}
}

func (s *SettlementStore) PaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *SettlementStore) PaymentByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.Payment, error) {
	return s.payments.FirstBy(ctx, "checkout_request_id = ?", checkoutRequestID)
}

func (s *SettlementStore) Booking(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// CreateAttempt persists a new INITIATED payment while holding the booking row
// lock, so two concurrent initiations for the same booking serialize here. An
// existing INITIATED record is reused, updated to the new attempt's method and
// phone; a record already in flight rejects the attempt with
// ErrPaymentInProgress.
func (s *SettlementStore) CreateAttempt(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	result := p
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.BookingID != nil {
			var booking models.Booking
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", *p.BookingID).First(&booking).Error
			if err != nil {
				return translate(err)
			}
			if booking.Status != models.BookingAwaitingPayment {
				return fmt.Errorf("%w: booking %s is %s", apperr.ErrBookingNotPayable, booking.ID, booking.Status)
			}

			var existing models.Payment
			err = tx.Where("booking_id = ? AND status NOT IN ?", *p.BookingID,
				[]models.PaymentStatus{models.StatusCompleted, models.StatusFailed}).
				First(&existing).Error
			switch {
			case err == nil:
				if existing.Status != models.StatusInitiated {
					return fmt.Errorf("%w: payment %s is %s", apperr.ErrPaymentInProgress, existing.ID, existing.Status)
				}
				// a retry may carry a corrected phone or a different method;
				// the reused record must reflect the attempt actually made
				if err := tx.Model(&models.Payment{}).Where("id = ?", existing.ID).
					Updates(map[string]interface{}{
						"method":            p.Method,
						"phone":             p.Phone,
						"commission_amount": p.CommissionAmount,
						"payee_amount":      p.PayeeAmount,
					}).Error; err != nil {
					return err
				}
				existing.Method = p.Method
				existing.Phone = p.Phone
				existing.CommissionAmount = p.CommissionAmount
				existing.PayeeAmount = p.PayeeAmount
				result = &existing
				return nil
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		return tx.Create(p).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkProcessing records the gateway correlation ids and moves
// INITIATED -> PROCESSING.
func (s *SettlementStore) MarkProcessing(ctx context.Context, paymentID, merchantRequestID, checkoutRequestID string) error {
	res := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, models.StatusInitiated).
		Updates(map[string]interface{}{
			"status":              models.StatusProcessing,
			"merchant_request_id": merchantRequestID,
			"checkout_request_id": checkoutRequestID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment %s not in INITIATED: %w", paymentID, apperr.ErrNotFound)
	}
	return nil
}

// MarkPendingConfirmation flags a PROCESSING payment the gateway still reports
// as unresolved, so the sweep can apply a harder expiry to it.
func (s *SettlementStore) MarkPendingConfirmation(ctx context.Context, paymentID string) error {
	return s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", paymentID, models.StatusProcessing).
		Update("status", models.StatusPendingConfirmation).Error
}

// MarkFailed is a compare-and-set to FAILED. Returns false without error when
// the payment was already terminal, which callers treat as a duplicate signal.
func (s *SettlementStore) MarkFailed(ctx context.Context, paymentID, reason string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status NOT IN ?", paymentID,
			[]models.PaymentStatus{models.StatusCompleted, models.StatusFailed}).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"failed_reason": reason,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CompleteSettlement applies every success effect in one transaction: the
// terminal payment write, the booking confirmation, and the wallet credit.
// The terminal check runs under a row lock, so a duplicate callback racing the
// sweep applies the effects exactly once; the loser returns (false, nil).
func (s *SettlementStore) CompleteSettlement(ctx context.Context, paymentID, receiptID string, completedAt time.Time) (bool, error) {
	applied := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Payment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", paymentID).First(&p).Error
		if err != nil {
			return translate(err)
		}
		if p.Status.IsTerminal() {
			return nil
		}

		updates := map[string]interface{}{
			"status":       models.StatusCompleted,
			"completed_at": completedAt,
		}
		// the status-query fallback confirms without a receipt
		if receiptID != "" {
			updates["receipt_id"] = receiptID
		}
		if err := tx.Model(&models.Payment{}).Where("id = ?", p.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		creditKey := "payment:" + p.ID

		switch p.Purpose {
		case models.PurposeBookingSettlement:
			var booking models.Booking
			if err := tx.Where("id = ?", *p.BookingID).First(&booking).Error; err != nil {
				return translate(err)
			}

			res := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", booking.ID, models.BookingAwaitingPayment).
				Update("status", models.BookingConfirmed)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("booking %s no longer awaiting payment", booking.ID)
			}

			if _, err := applyTransaction(tx, booking.ProviderID, models.TransactionCredit,
				p.PayeeAmount, models.ReasonBookingPayout, &creditKey); err != nil {
				return err
			}

		case models.PurposeWalletTopup:
			if _, err := applyTransaction(tx, p.PayerID, models.TransactionCredit,
				p.Amount, models.ReasonTopup, &creditKey); err != nil {
				return err
			}
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// SettleFromWallet settles a booking from the customer's wallet in a single
// transaction: debit the payer, confirm the booking, credit the provider's
// payee amount, and complete the payment. No gateway leg.
func (s *SettlementStore) SettleFromWallet(ctx context.Context, paymentID string, completedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Payment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", paymentID).First(&p).Error
		if err != nil {
			return translate(err)
		}
		if p.Status.IsTerminal() {
			return nil
		}
		if p.BookingID == nil {
			return fmt.Errorf("%w: wallet settlement requires a booking", apperr.ErrValidation)
		}

		var booking models.Booking
		if err := tx.Where("id = ?", *p.BookingID).First(&booking).Error; err != nil {
			return translate(err)
		}

		debitKey := "payment:" + p.ID + ":debit"
		if _, err := applyTransaction(tx, p.PayerID, models.TransactionDebit,
			p.Amount, models.ReasonBookingPayment, &debitKey); err != nil {
			return err
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingAwaitingPayment).
			Update("status", models.BookingConfirmed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("booking %s no longer awaiting payment", booking.ID)
		}

		creditKey := "payment:" + p.ID
		if _, err := applyTransaction(tx, booking.ProviderID, models.TransactionCredit,
			p.PayeeAmount, models.ReasonBookingPayout, &creditKey); err != nil {
			return err
		}

		return tx.Model(&models.Payment{}).Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"status":       models.StatusCompleted,
				"completed_at": completedAt,
			}).Error
	})
}

// StalePayments lists in-flight payments whose last update is older than the
// cutoff. Feeds the status-query sweep.
func (s *SettlementStore) StalePayments(ctx context.Context, statuses []models.PaymentStatus, updatedBefore time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?", statuses, updatedBefore).
		Order("updated_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
