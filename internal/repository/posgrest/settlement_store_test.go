package posgrest_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/hudumapay/settlement-service/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func awaitingBookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "provider_id", "amount", "currency", "status"}).
		AddRow("booking-1", "customer-1", "provider-1", "3500", "KES", string(models.BookingAwaitingPayment))
}

func TestCreateAttempt_ReuseTakesNewPhoneAndMethod(t *testing.T) {
	db, mock := newMockDB(t)
	store := posgrest.NewSettlementStore(db)
	bookingID := "booking-1"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "bookings" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(awaitingBookingRows())
	mock.ExpectQuery(`SELECT .+ FROM "payments" WHERE booking_id = .+ AND status NOT IN .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "payer_id", "purpose", "amount", "method", "status", "phone"}).
			AddRow("payment-1", bookingID, "customer-1", string(models.PurposeBookingSettlement),
				"3500", string(models.MethodMpesa), string(models.StatusInitiated), "254700000001"))
	mock.ExpectExec(`UPDATE "payments" SET .*"phone"=.+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := store.CreateAttempt(context.Background(), &models.Payment{
		BookingID:        &bookingID,
		PayerID:          "customer-1",
		Purpose:          models.PurposeBookingSettlement,
		Amount:           decimal.RequireFromString("3500"),
		Method:           models.MethodMpesa,
		Phone:            "254700000002",
		CommissionAmount: decimal.RequireFromString("525"),
		PayeeAmount:      decimal.RequireFromString("2975"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-1", got.ID)
	assert.Equal(t, "254700000002", got.Phone)
	assert.Equal(t, models.MethodMpesa, got.Method)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttempt_RejectsAttemptAlreadyInFlight(t *testing.T) {
	db, mock := newMockDB(t)
	store := posgrest.NewSettlementStore(db)
	bookingID := "booking-1"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "bookings" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(awaitingBookingRows())
	mock.ExpectQuery(`SELECT .+ FROM "payments" WHERE booking_id = .+ AND status NOT IN .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "status"}).
			AddRow("payment-1", bookingID, string(models.StatusProcessing)))
	mock.ExpectRollback()

	_, err := store.CreateAttempt(context.Background(), &models.Payment{
		BookingID: &bookingID,
		PayerID:   "customer-1",
		Purpose:   models.PurposeBookingSettlement,
		Amount:    decimal.RequireFromString("3500"),
		Method:    models.MethodMpesa,
		Phone:     "254700000001",
	})

	assert.ErrorIs(t, err, apperr.ErrPaymentInProgress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttempt_BookingNotPayable(t *testing.T) {
	db, mock := newMockDB(t)
	store := posgrest.NewSettlementStore(db)
	bookingID := "booking-1"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "bookings" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "provider_id", "amount", "currency", "status"}).
			AddRow(bookingID, "customer-1", "provider-1", "3500", "KES", string(models.BookingConfirmed)))
	mock.ExpectRollback()

	_, err := store.CreateAttempt(context.Background(), &models.Payment{
		BookingID: &bookingID,
		PayerID:   "customer-1",
		Amount:    decimal.RequireFromString("3500"),
	})

	assert.ErrorIs(t, err, apperr.ErrBookingNotPayable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteSettlement_TerminalPaymentAppliesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	store := posgrest.NewSettlementStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "payments" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payer_id", "purpose", "amount", "status"}).
			AddRow("payment-1", "customer-1", string(models.PurposeBookingSettlement),
				"3500", string(models.StatusCompleted)))
	mock.ExpectCommit()

	applied, err := store.CompleteSettlement(context.Background(), "payment-1", "SBK12XYZ", time.Now().UTC())

	assert.NoError(t, err)
	// the loser of the callback/sweep race sees the row already terminal and
	// must not touch the booking or the wallet
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
