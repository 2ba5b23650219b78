package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hudumapay/settlement-service/internal/gateway"
	"github.com/sirupsen/logrus"
)

type Finalizer interface {
	Finalize(ctx context.Context, result *gateway.CallbackResult) error
}

// CallbackHandler is the HTTP boundary for the gateway's asynchronous
// notifications. It always acknowledges 200: the gateway retries non-2xx
// indefinitely, and correctness is owned by Finalize's idempotency, not by
// the response code. There is no gateway signature to verify; payloads are
// validated by shape and matched strictly against stored correlation ids.
type CallbackHandler struct {
	Service Finalizer
}

func NewCallbackHandler(s Finalizer) *CallbackHandler {
	return &CallbackHandler{Service: s}
}

// POST /payments/callback
func (h *CallbackHandler) GatewayCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logrus.WithError(err).Error("failed to read callback body")
		ack(c)
		return
	}

	result, err := gateway.ParseCallback(body)
	if err != nil {
		// malformed but harmless; acking avoids a gateway retry storm
		logrus.WithError(err).WithField("payload_size", len(body)).
			Warn("discarding malformed gateway callback")
		ack(c)
		return
	}

	if err := h.Service.Finalize(c.Request.Context(), result); err != nil {
		// recorded for out-of-band reconciliation; the gateway still gets 200
		logrus.WithError(err).WithField("checkout_request_id", result.CheckoutRequestID).
			Error("finalize failed for gateway callback")
	}

	ack(c)
}

func ack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ResultCode": 0,
		"ResultDesc": "Accepted",
	})
}
