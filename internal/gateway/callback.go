package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/shopspring/decimal"
)

// CallbackResult is the validated, strongly typed view of one gateway
// notification. Amount and Phone are optional; the gateway omits metadata on
// failed pushes.
type CallbackResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	Succeeded         bool
	ReceiptID         string
	Amount            *decimal.Decimal
	Phone             string
	FailureReason     string
}

type callbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []metadataItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type metadataItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

// ParseCallback validates and converts a raw webhook payload. Pure: no I/O and
// no state. Anything that does not match the expected shape fails with
// ErrMalformedCallback rather than a bare decode error.
func ParseCallback(raw []byte) (*CallbackResult, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrMalformedCallback, err)
	}

	cb := env.Body.StkCallback
	if cb.CheckoutRequestID == "" {
		return nil, fmt.Errorf("%w: missing CheckoutRequestID", apperr.ErrMalformedCallback)
	}

	result := &CallbackResult{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		Succeeded:         cb.ResultCode == 0,
		FailureReason:     cb.ResultDesc,
	}

	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			var f float64
			if err := json.Unmarshal(item.Value, &f); err != nil {
				return nil, fmt.Errorf("%w: non-numeric Amount", apperr.ErrMalformedCallback)
			}
			amount := decimal.NewFromFloat(f)
			result.Amount = &amount
		case "MpesaReceiptNumber":
			var s string
			if err := json.Unmarshal(item.Value, &s); err != nil {
				return nil, fmt.Errorf("%w: non-string receipt number", apperr.ErrMalformedCallback)
			}
			result.ReceiptID = s
		case "PhoneNumber":
			// arrives as a number on some telcos, a string on others
			var s string
			if err := json.Unmarshal(item.Value, &s); err != nil {
				var n json.Number
				if err := json.Unmarshal(item.Value, &n); err != nil {
					return nil, fmt.Errorf("%w: unreadable phone number", apperr.ErrMalformedCallback)
				}
				s = n.String()
			}
			result.Phone = s
		}
	}

	if result.Succeeded && result.ReceiptID == "" {
		return nil, fmt.Errorf("%w: success callback without receipt", apperr.ErrMalformedCallback)
	}

	return result, nil
}
