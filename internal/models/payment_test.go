package models_test

import (
	"testing"

	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitAmount(t *testing.T) {
	cases := []struct {
		name           string
		amount         string
		rate           string
		wantCommission string
		wantPayee      string
	}{
		{name: "even split", amount: "3500", rate: "0.15", wantCommission: "525", wantPayee: "2975"},
		{name: "rounding absorbed by payee", amount: "100.01", rate: "0.15", wantCommission: "15", wantPayee: "85.01"},
		{name: "sub-cent commission", amount: "0.03", rate: "0.15", wantCommission: "0", wantPayee: "0.03"},
		{name: "zero rate", amount: "3500", rate: "0", wantCommission: "0", wantPayee: "3500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			commission, payee := models.SplitAmount(amount, decimal.RequireFromString(tc.rate))

			assert.Equal(t, tc.wantCommission, commission.String())
			assert.Equal(t, tc.wantPayee, payee.String())
			assert.True(t, commission.Add(payee).Equal(amount), "split must sum back to the gross amount")
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	bookingID := "booking-1"
	valid := models.Payment{
		BookingID:        &bookingID,
		PayerID:          "customer-1",
		Purpose:          models.PurposeBookingSettlement,
		Amount:           decimal.RequireFromString("3500"),
		Method:           models.MethodMpesa,
		CommissionAmount: decimal.RequireFromString("525"),
		PayeeAmount:      decimal.RequireFromString("2975"),
	}
	assert.NoError(t, valid.Validate())

	badMethod := valid
	badMethod.Method = "CHEQUE"
	assert.Error(t, badMethod.Validate())

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	assert.Error(t, zeroAmount.Validate())

	noPayer := valid
	noPayer.PayerID = ""
	assert.Error(t, noPayer.Validate())

	noBooking := valid
	noBooking.BookingID = nil
	assert.Error(t, noBooking.Validate())

	badSplit := valid
	badSplit.CommissionAmount = decimal.RequireFromString("500")
	assert.Error(t, badSplit.Validate())
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.True(t, models.StatusCompleted.IsTerminal())
	assert.True(t, models.StatusFailed.IsTerminal())
	assert.False(t, models.StatusInitiated.IsTerminal())
	assert.False(t, models.StatusProcessing.IsTerminal())
	assert.False(t, models.StatusPendingConfirmation.IsTerminal())
}

func TestPaymentMethodIsMobileMoney(t *testing.T) {
	assert.True(t, models.MethodMpesa.IsMobileMoney())
	assert.True(t, models.MethodAirtelMoney.IsMobileMoney())
	assert.False(t, models.MethodCard.IsMobileMoney())
	assert.False(t, models.MethodWallet.IsMobileMoney())
}
