// Package apperr carries the error taxonomy shared across the settlement
// core. Handlers map these onto HTTP responses; the gateway client translates
// raw transport failures into them before anything reaches the engine.
package apperr

import "errors"

var (
	// ErrValidation marks bad caller input. Never retried.
	ErrValidation = errors.New("validation error")

	// ErrGatewayUnavailable marks a transport failure talking to the external
	// gateway. Retryable with backoff; the payment stays in INITIATED.
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrGatewayRejected marks an explicit decline by the gateway. Not
	// retryable without changed input.
	ErrGatewayRejected = errors.New("gateway rejected request")

	// ErrAmountMismatch marks a success callback whose amount disagrees with
	// the recorded payment. The payment fails and an anomaly is emitted.
	ErrAmountMismatch = errors.New("callback amount mismatch")

	// ErrInsufficientFunds marks a wallet debit exceeding the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMalformedCallback marks a gateway notification that does not match
	// the expected shape.
	ErrMalformedCallback = errors.New("malformed gateway callback")

	// ErrBookingNotPayable marks a booking that is not awaiting payment.
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")

	// ErrPaymentInProgress marks an initiate attempt while another push for
	// the same booking is still in flight.
	ErrPaymentInProgress = errors.New("payment already in progress")

	ErrNotFound = errors.New("record not found")
)

// Retryable reports whether the caller may usefully repeat the operation
// unchanged. Drives the "try again" versus "contact support" distinction.
func Retryable(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable)
}
