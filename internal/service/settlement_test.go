package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/gateway"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/hudumapay/settlement-service/internal/models/dto"
	"github.com/hudumapay/settlement-service/internal/service"
	"github.com/hudumapay/settlement-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEngine(t *testing.T) (*service.SettlementEngine, *mocks.MockSettlementStore, *mocks.MockGatewayAPI, *mocks.MockPublisher) {
	mockStore := mocks.NewMockSettlementStore(t)
	mockGateway := mocks.NewMockGatewayAPI(t)
	mockPublisher := mocks.NewMockPublisher(t)
	engine := service.NewSettlementEngine(mockStore, mockGateway, mockPublisher,
		decimal.RequireFromString("0.15"), "KES")
	return engine, mockStore, mockGateway, mockPublisher
}

func awaitingBooking() *models.Booking {
	return &models.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		ProviderID: "provider-1",
		Amount:     decimal.RequireFromString("3500"),
		Currency:   "KES",
		Status:     models.BookingAwaitingPayment,
	}
}

func TestInitiate_MpesaSuccess(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusInitiated &&
				p.Method == models.MethodMpesa &&
				p.Purpose == models.PurposeBookingSettlement &&
				p.CommissionAmount.Equal(decimal.RequireFromString("525")) &&
				p.PayeeAmount.Equal(decimal.RequireFromString("2975"))
		})).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			p.ID = "payment-1"
			return p, nil
		}).
		Once()

	mockGateway.EXPECT().
		InitiatePush(ctx, "0712345678", mock.AnythingOfType("decimal.Decimal"), "payment-1", "Booking booking-1").
		Return(&gateway.PushResult{
			MerchantRequestID: "mr-1",
			CheckoutRequestID: "ws_CO_1",
			ResponseCode:      "0",
			CustomerMessage:   "Success. Request accepted for processing",
		}, nil).
		Once()

	mockStore.EXPECT().
		MarkProcessing(ctx, "payment-1", "mr-1", "ws_CO_1").
		Return(nil).
		Once()

	handle, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "mpesa",
		Phone:     "0712345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-1", handle.PaymentID)
	assert.Equal(t, "Success. Request accepted for processing", handle.Message)
}

func TestInitiate_UnsupportedMethod(t *testing.T) {
	engine, mockStore, _, _ := newEngine(t)

	handle, err := engine.Initiate(context.Background(), "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "BITCOIN",
	})

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	mockStore.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestInitiate_CardNotEnabled(t *testing.T) {
	engine, mockStore, _, _ := newEngine(t)

	_, err := engine.Initiate(context.Background(), "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "CARD",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	mockStore.AssertNotCalled(t, "Booking", mock.Anything, mock.Anything)
}

func TestInitiate_MobileMoneyRequiresPhone(t *testing.T) {
	engine, _, _, _ := newEngine(t)

	_, err := engine.Initiate(context.Background(), "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "MPESA",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestInitiate_BookingBelongsToSomeoneElse(t *testing.T) {
	engine, mockStore, _, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	_, err := engine.Initiate(ctx, "intruder", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "MPESA",
		Phone:     "0712345678",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	mockStore.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestInitiate_GatewayUnavailableLeavesInitiated(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.AnythingOfType("*models.Payment")).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			p.ID = "payment-1"
			return p, nil
		}).
		Once()

	mockGateway.EXPECT().
		InitiatePush(ctx, "0712345678", mock.AnythingOfType("decimal.Decimal"), "payment-1", "Booking booking-1").
		Return(nil, fmt.Errorf("%w: connection refused", apperr.ErrGatewayUnavailable)).
		Once()

	_, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "MPESA",
		Phone:     "0712345678",
	})

	assert.ErrorIs(t, err, apperr.ErrGatewayUnavailable)
	assert.True(t, apperr.Retryable(err))
	mockStore.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "MarkProcessing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiate_RetryPushesToCorrectedPhone(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	// the store reuses the INITIATED record from the failed first attempt
	// but carries over the retry's phone
	mockStore.EXPECT().
		CreateAttempt(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Phone == "0712999999"
		})).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			reused := *p
			reused.ID = "payment-1"
			return &reused, nil
		}).
		Once()

	mockGateway.EXPECT().
		InitiatePush(ctx, "0712999999", mock.AnythingOfType("decimal.Decimal"), "payment-1", "Booking booking-1").
		Return(&gateway.PushResult{
			MerchantRequestID: "mr-2",
			CheckoutRequestID: "ws_CO_2",
			ResponseCode:      "0",
		}, nil).
		Once()

	mockStore.EXPECT().
		MarkProcessing(ctx, "payment-1", "mr-2", "ws_CO_2").
		Return(nil).
		Once()

	handle, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "MPESA",
		Phone:     "0712999999",
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-1", handle.PaymentID)
}

func TestInitiate_RetryCanSwitchToWallet(t *testing.T) {
	engine, mockStore, mockGateway, mockPublisher := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Method == models.MethodWallet
		})).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			reused := *p
			reused.ID = "payment-1"
			return &reused, nil
		}).
		Once()

	mockStore.EXPECT().
		SettleFromWallet(ctx, "payment-1", mock.AnythingOfType("time.Time")).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationTopic, mock.AnythingOfType("models.NotificationEvent")).
		Return(nil).
		Times(2)

	handle, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "WALLET",
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-1", handle.PaymentID)
	mockGateway.AssertNotCalled(t, "InitiatePush",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiate_GatewayRejectionIsTerminal(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.AnythingOfType("*models.Payment")).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			p.ID = "payment-1"
			return p, nil
		}).
		Once()

	rejection := fmt.Errorf("%w: code 1: invalid shortcode", apperr.ErrGatewayRejected)
	mockGateway.EXPECT().
		InitiatePush(ctx, "0712345678", mock.AnythingOfType("decimal.Decimal"), "payment-1", "Booking booking-1").
		Return(nil, rejection).
		Once()

	mockStore.EXPECT().
		MarkFailed(ctx, "payment-1", rejection.Error()).
		Return(true, nil).
		Once()

	_, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "MPESA",
		Phone:     "0712345678",
	})

	assert.ErrorIs(t, err, apperr.ErrGatewayRejected)
	assert.False(t, apperr.Retryable(err))
}

func TestInitiate_WalletSettlesSynchronously(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Method == models.MethodWallet
		})).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			p.ID = "payment-1"
			return p, nil
		}).
		Once()

	mockStore.EXPECT().
		SettleFromWallet(ctx, "payment-1", mock.AnythingOfType("time.Time")).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationTopic, mock.AnythingOfType("models.NotificationEvent")).
		Return(nil).
		Times(2)

	handle, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "WALLET",
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-1", handle.PaymentID)
}

func TestInitiate_WalletInsufficientFunds(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		Booking(ctx, "booking-1").
		Return(awaitingBooking(), nil).
		Once()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.AnythingOfType("*models.Payment")).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			p.ID = "payment-1"
			return p, nil
		}).
		Once()

	mockStore.EXPECT().
		SettleFromWallet(ctx, "payment-1", mock.AnythingOfType("time.Time")).
		Return(apperr.ErrInsufficientFunds).
		Once()

	mockStore.EXPECT().
		MarkFailed(ctx, "payment-1", "insufficient wallet balance").
		Return(true, nil).
		Once()

	_, err := engine.Initiate(ctx, "customer-1", &dto.InitiatePayment{
		BookingID: "booking-1",
		Method:    "WALLET",
	})

	assert.ErrorIs(t, err, apperr.ErrInsufficientFunds)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitiateTopup_NoCommission(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		CreateAttempt(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Purpose == models.PurposeWalletTopup &&
				p.CommissionAmount.IsZero() &&
				p.PayeeAmount.Equal(decimal.RequireFromString("1000")) &&
				p.BookingID == nil
		})).
		RunAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			p.ID = "topup-1"
			return p, nil
		}).
		Once()

	mockGateway.EXPECT().
		InitiatePush(ctx, "254712345678", mock.AnythingOfType("decimal.Decimal"), "topup-1", "Wallet top-up").
		Return(&gateway.PushResult{MerchantRequestID: "mr-2", CheckoutRequestID: "ws_CO_2", ResponseCode: "0"}, nil).
		Once()

	mockStore.EXPECT().
		MarkProcessing(ctx, "topup-1", "mr-2", "ws_CO_2").
		Return(nil).
		Once()

	handle, err := engine.InitiateTopup(ctx, "customer-1", &dto.WalletTopup{
		Amount: "1000",
		Method: "MPESA",
		Phone:  "254712345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "topup-1", handle.PaymentID)
	assert.NotEmpty(t, handle.Message)
}

func TestInitiateTopup_RejectsNonMobileMoney(t *testing.T) {
	engine, mockStore, _, _ := newEngine(t)

	_, err := engine.InitiateTopup(context.Background(), "customer-1", &dto.WalletTopup{
		Amount: "1000",
		Method: "WALLET",
	})

	assert.ErrorIs(t, err, apperr.ErrValidation)
	mockStore.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestFinalize_Success(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	bookingID := "booking-1"
	checkoutID := "ws_CO_1"
	payment := &models.Payment{
		ID:                "payment-1",
		BookingID:         &bookingID,
		PayerID:           "customer-1",
		Purpose:           models.PurposeBookingSettlement,
		Amount:            decimal.RequireFromString("3500"),
		Currency:          "KES",
		Method:            models.MethodMpesa,
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
	}

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, checkoutID).
		Return(payment, nil).
		Once()

	mockStore.EXPECT().
		CompleteSettlement(ctx, "payment-1", "SBK12XYZ", mock.AnythingOfType("time.Time")).
		Return(true, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationTopic, mock.AnythingOfType("models.NotificationEvent")).
		Return(nil).
		Once()

	amount := decimal.RequireFromString("3500")
	err := engine.Finalize(ctx, &gateway.CallbackResult{
		CheckoutRequestID: checkoutID,
		Succeeded:         true,
		ReceiptID:         "SBK12XYZ",
		Amount:            &amount,
	})

	assert.NoError(t, err)
}

func TestFinalize_UnknownCorrelationIDDiscarded(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, "ws_CO_unknown").
		Return(nil, apperr.ErrNotFound).
		Once()

	err := engine.Finalize(ctx, &gateway.CallbackResult{
		CheckoutRequestID: "ws_CO_unknown",
		Succeeded:         true,
		ReceiptID:         "SBK12XYZ",
	})

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "CompleteSettlement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_DuplicateCallbackIsNoop(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	receipt := "SBK12XYZ"
	payment := &models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Status:            models.StatusCompleted,
		CheckoutRequestID: &checkoutID,
		ReceiptID:         &receipt,
		Amount:            decimal.RequireFromString("3500"),
	}

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, checkoutID).
		Return(payment, nil).
		Once()

	err := engine.Finalize(ctx, &gateway.CallbackResult{
		CheckoutRequestID: checkoutID,
		Succeeded:         true,
		ReceiptID:         receipt,
	})

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "CompleteSettlement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_FailureNotifiesPayer(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	payment := &models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
		Amount:            decimal.RequireFromString("3500"),
	}

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, checkoutID).
		Return(payment, nil).
		Once()

	mockStore.EXPECT().
		MarkFailed(ctx, "payment-1", "Request cancelled by user").
		Return(true, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationTopic, mock.MatchedBy(func(e models.NotificationEvent) bool {
			return e.Template == "payment_failed" && e.UserID == "customer-1"
		})).
		Return(nil).
		Once()

	err := engine.Finalize(ctx, &gateway.CallbackResult{
		CheckoutRequestID: checkoutID,
		Succeeded:         false,
		FailureReason:     "Request cancelled by user",
	})

	assert.NoError(t, err)
}

func TestFinalize_AmountMismatchFailsAndFlags(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	payment := &models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
		Amount:            decimal.RequireFromString("3500"),
	}

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, checkoutID).
		Return(payment, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.AnomalyTopic, mock.MatchedBy(func(e models.AnomalyEvent) bool {
			return e.PaymentID == "payment-1" &&
				e.ExpectedAmount == "3500" &&
				e.ReportedAmount == "3000"
		})).
		Return(nil).
		Once()

	mockStore.EXPECT().
		MarkFailed(ctx, "payment-1", mock.MatchedBy(func(reason string) bool {
			return strings.Contains(reason, apperr.ErrAmountMismatch.Error())
		})).
		Return(true, nil).
		Once()

	reported := decimal.RequireFromString("3000")
	err := engine.Finalize(ctx, &gateway.CallbackResult{
		CheckoutRequestID: checkoutID,
		Succeeded:         true,
		ReceiptID:         "SBK12XYZ",
		Amount:            &reported,
	})

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "CompleteSettlement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalize_ConcurrentFinalizeAppliesOnce(t *testing.T) {
	engine, mockStore, _, mockPublisher := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	payment := &models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Purpose:           models.PurposeBookingSettlement,
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
		Amount:            decimal.RequireFromString("3500"),
	}

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, checkoutID).
		Return(payment, nil).
		Once()

	mockStore.EXPECT().
		CompleteSettlement(ctx, "payment-1", "SBK12XYZ", mock.AnythingOfType("time.Time")).
		Return(false, nil).
		Once()

	err := engine.Finalize(ctx, &gateway.CallbackResult{
		CheckoutRequestID: checkoutID,
		Succeeded:         true,
		ReceiptID:         "SBK12XYZ",
	})

	assert.NoError(t, err)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatus_HidesOtherCallersPayments(t *testing.T) {
	engine, mockStore, _, _ := newEngine(t)
	ctx := context.Background()

	mockStore.EXPECT().
		PaymentByID(ctx, "payment-1").
		Return(&models.Payment{
			ID:      "payment-1",
			PayerID: "customer-1",
			Status:  models.StatusCompleted,
			Amount:  decimal.RequireFromString("3500"),
			Method:  models.MethodMpesa,
		}, nil).
		Once()

	status, err := engine.Status(ctx, "intruder", "payment-1")

	assert.Nil(t, status)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStatus_CompletedPayment(t *testing.T) {
	engine, mockStore, _, _ := newEngine(t)
	ctx := context.Background()

	receipt := "SBK12XYZ"
	completedAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	mockStore.EXPECT().
		PaymentByID(ctx, "payment-1").
		Return(&models.Payment{
			ID:          "payment-1",
			PayerID:     "customer-1",
			Status:      models.StatusCompleted,
			Amount:      decimal.RequireFromString("3500"),
			Method:      models.MethodMpesa,
			ReceiptID:   &receipt,
			CompletedAt: &completedAt,
		}, nil).
		Once()

	status, err := engine.Status(ctx, "customer-1", "payment-1")

	assert.NoError(t, err)
	assert.Equal(t, "COMPLETED", status.Status)
	assert.Equal(t, "3500.00", status.Amount)
	assert.Equal(t, "SBK12XYZ", status.ReceiptID)
	assert.Equal(t, "2026-03-10T14:30:00Z", status.CompletedAt)
}

func TestRecoverStale_PendingWithinExpiry(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	stale := models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
		CreatedAt:         time.Now().Add(-5 * time.Minute),
	}

	mockStore.EXPECT().
		StalePayments(ctx, []models.PaymentStatus{models.StatusProcessing, models.StatusPendingConfirmation}, mock.AnythingOfType("time.Time")).
		Return([]models.Payment{stale}, nil).
		Once()

	mockGateway.EXPECT().
		QueryStatus(ctx, checkoutID).
		Return(&gateway.StatusResult{Pending: true}, nil).
		Once()

	mockStore.EXPECT().
		MarkPendingConfirmation(ctx, "payment-1").
		Return(nil).
		Once()

	err := engine.RecoverStale(ctx, 3*time.Minute, 15*time.Minute)

	assert.NoError(t, err)
}

func TestRecoverStale_PendingPastExpiryFails(t *testing.T) {
	engine, mockStore, mockGateway, mockPublisher := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	stale := models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Status:            models.StatusPendingConfirmation,
		CheckoutRequestID: &checkoutID,
		CreatedAt:         time.Now().Add(-30 * time.Minute),
	}

	mockStore.EXPECT().
		StalePayments(ctx, []models.PaymentStatus{models.StatusProcessing, models.StatusPendingConfirmation}, mock.AnythingOfType("time.Time")).
		Return([]models.Payment{stale}, nil).
		Once()

	mockGateway.EXPECT().
		QueryStatus(ctx, checkoutID).
		Return(&gateway.StatusResult{Pending: true}, nil).
		Once()

	mockStore.EXPECT().
		MarkFailed(ctx, "payment-1", "gateway confirmation timed out").
		Return(true, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationTopic, mock.AnythingOfType("models.NotificationEvent")).
		Return(nil).
		Once()

	err := engine.RecoverStale(ctx, 3*time.Minute, 15*time.Minute)

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "MarkPendingConfirmation", mock.Anything, mock.Anything)
}

func TestRecoverStale_ResolvedThroughFinalize(t *testing.T) {
	engine, mockStore, mockGateway, mockPublisher := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	stale := models.Payment{
		ID:                "payment-1",
		PayerID:           "customer-1",
		Purpose:           models.PurposeWalletTopup,
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
		Amount:            decimal.RequireFromString("1000"),
		CreatedAt:         time.Now().Add(-5 * time.Minute),
	}

	mockStore.EXPECT().
		StalePayments(ctx, []models.PaymentStatus{models.StatusProcessing, models.StatusPendingConfirmation}, mock.AnythingOfType("time.Time")).
		Return([]models.Payment{stale}, nil).
		Once()

	mockGateway.EXPECT().
		QueryStatus(ctx, checkoutID).
		Return(&gateway.StatusResult{Succeeded: true, ResultCode: "0"}, nil).
		Once()

	mockStore.EXPECT().
		PaymentByCheckoutID(ctx, checkoutID).
		Return(&stale, nil).
		Once()

	// status query carries no receipt; the completion keeps the column empty
	mockStore.EXPECT().
		CompleteSettlement(ctx, "payment-1", "", mock.AnythingOfType("time.Time")).
		Return(true, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationTopic, mock.MatchedBy(func(e models.NotificationEvent) bool {
			return e.Template == "wallet_topup"
		})).
		Return(nil).
		Once()

	err := engine.RecoverStale(ctx, 3*time.Minute, 15*time.Minute)

	assert.NoError(t, err)
}

func TestRecoverStale_QueryErrorSkipsPayment(t *testing.T) {
	engine, mockStore, mockGateway, _ := newEngine(t)
	ctx := context.Background()

	checkoutID := "ws_CO_1"
	stale := models.Payment{
		ID:                "payment-1",
		Status:            models.StatusProcessing,
		CheckoutRequestID: &checkoutID,
		CreatedAt:         time.Now().Add(-5 * time.Minute),
	}

	mockStore.EXPECT().
		StalePayments(ctx, []models.PaymentStatus{models.StatusProcessing, models.StatusPendingConfirmation}, mock.AnythingOfType("time.Time")).
		Return([]models.Payment{stale}, nil).
		Once()

	mockGateway.EXPECT().
		QueryStatus(ctx, checkoutID).
		Return(nil, errors.New("timeout")).
		Once()

	err := engine.RecoverStale(ctx, 3*time.Minute, 15*time.Minute)

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
}
